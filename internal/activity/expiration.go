package activity

import (
	"fmt"
	"time"

	"github.com/wonny/renthub/backend/internal/contracts"
)

// PartyNames carries the resolved display names for one lease
type PartyNames struct {
	Property string
	Tenant   string
}

// reminderThreshold is a fixed warning window ahead of lease expiration
type reminderThreshold struct {
	days     int
	priority contracts.ActivityPriority
	label    string
}

// The three expiration warning windows, in the order activities are
// emitted. Urgency grows as the window shrinks.
var expirationThresholds = []reminderThreshold{
	{days: 90, priority: contracts.ActivityPriorityLow, label: "3 months"},
	{days: 30, priority: contracts.ActivityPriorityMedium, label: "1 month"},
	{days: 7, priority: contracts.ActivityPriorityHigh, label: "1 week"},
}

// ExpirationReminders computes the expiration-warning activities for one
// lease relative to today. Each threshold is evaluated independently: a
// reminder is included iff its date (end date minus the threshold offset)
// falls on today or later. Thresholds already elapsed produce nothing.
// Pure; the caller is responsible for persistence.
func ExpirationReminders(lease *contracts.Lease, names PartyNames, today time.Time) []*contracts.Activity {
	var out []*contracts.Activity

	for _, th := range expirationThresholds {
		reminderDate := lease.EndDate.AddDate(0, 0, -th.days)
		if !onOrAfterDay(reminderDate, today) {
			continue
		}

		out = append(out, &contracts.Activity{
			Description: fmt.Sprintf(
				"Lease with %s for %s expires in %s, on %s",
				names.Tenant, names.Property, th.label, lease.EndDate.Format("2006-01-02"),
			),
			PropertyID:   lease.PropertyID,
			PropertyName: names.Property,
			TenantID:     lease.TenantID,
			TenantName:   names.Tenant,
			Date:         reminderDate,
			Type:         contracts.ActivityTypeContractExpiration,
			Priority:     th.priority,
			Status:       contracts.ActivityStatusPending,
			RelatedID:    lease.ID,
		})
	}

	return out
}
