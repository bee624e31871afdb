package contracts

import "time"

// ActivityType classifies a generated reminder
type ActivityType string

const (
	ActivityTypeContractExpiration ActivityType = "contract_expiration"
	ActivityTypeRentPayment        ActivityType = "rent_payment"
)

// ActivityPriority is the urgency of a reminder. Expiration reminders use
// all three levels; payment reminders are always medium.
type ActivityPriority string

const (
	ActivityPriorityLow    ActivityPriority = "low"
	ActivityPriorityMedium ActivityPriority = "medium"
	ActivityPriorityHigh   ActivityPriority = "high"
)

// ActivityStatus is the workflow state of a reminder
type ActivityStatus string

const (
	ActivityStatusPending   ActivityStatus = "pending"
	ActivityStatusDone      ActivityStatus = "done"
	ActivityStatusDismissed ActivityStatus = "dismissed"
)

// Activity is an operational reminder derived from a lease: an expiration
// warning or a rent payment due notice. RelatedID links back to the
// originating lease so downstream consumers can trace or deduplicate.
type Activity struct {
	ID           string           `json:"id"`
	Description  string           `json:"description"`
	PropertyID   string           `json:"property_id"`
	PropertyName string           `json:"property_name"`
	TenantID     *string          `json:"tenant_id,omitempty"`
	TenantName   string           `json:"tenant_name"`
	Date         time.Time        `json:"date"`
	Type         ActivityType     `json:"type"`
	Priority     ActivityPriority `json:"priority"`
	Status       ActivityStatus   `json:"status"`
	RelatedID    string           `json:"related_id"`
	CreatedAt    time.Time        `json:"created_at"`
}

// ValidActivityStatus reports whether s is a known workflow state
func ValidActivityStatus(s ActivityStatus) bool {
	switch s {
	case ActivityStatusPending, ActivityStatusDone, ActivityStatusDismissed:
		return true
	}
	return false
}
