package activity

import (
	"fmt"
	"time"

	"github.com/wonny/renthub/backend/internal/contracts"
)

// rentHorizonMonths caps how many future monthly payment reminders one
// engine run may produce, regardless of how much longer the lease runs.
const rentHorizonMonths = 12

// RentReminders computes the monthly rent payment activities for one
// lease relative to today: one per remaining calendar month of the
// tenancy (current month included), capped at the 12-month horizon. The
// due date is always the first day of the month, and a due date equal to
// the lease start or end date is excluded — both bounds are strict.
// Pure; the caller is responsible for persistence.
func RentReminders(lease *contracts.Lease, names PartyNames, today time.Time, locale string) []*contracts.Activity {
	monthsRemaining := monthDiff(lease.EndDate, today) + 1
	if monthsRemaining <= 0 {
		// Lease already ended relative to today
		return nil
	}
	if monthsRemaining > rentHorizonMonths {
		monthsRemaining = rentHorizonMonths
	}

	var out []*contracts.Activity

	for i := 0; i < monthsRemaining; i++ {
		dueDate := firstOfMonth(today, i)

		// Strictly inside the tenancy window: a due date landing exactly
		// on the start or end date is skipped.
		if compareDay(dueDate, lease.StartDate) <= 0 || compareDay(dueDate, lease.EndDate) >= 0 {
			continue
		}

		out = append(out, &contracts.Activity{
			Description: fmt.Sprintf(
				"Rent payment from %s for %s due for %s",
				names.Tenant, names.Property, monthLabel(dueDate, locale),
			),
			PropertyID:   lease.PropertyID,
			PropertyName: names.Property,
			TenantID:     lease.TenantID,
			TenantName:   names.Tenant,
			Date:         dueDate,
			Type:         contracts.ActivityTypeRentPayment,
			Priority:     contracts.ActivityPriorityMedium,
			Status:       contracts.ActivityStatusPending,
			RelatedID:    lease.ID,
		})
	}

	return out
}
