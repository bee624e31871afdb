package contracts

import "time"

// LeaseStatus is the lifecycle state of a lease contract
type LeaseStatus string

const (
	LeaseStatusActive   LeaseStatus = "active"
	LeaseStatusInactive LeaseStatus = "inactive"
	LeaseStatusDraft    LeaseStatus = "draft"
)

// Lease represents a tenancy agreement linking a property to a tenant.
// StartDate is always before EndDate; only active leases feed the
// activity engine.
type Lease struct {
	ID         string      `json:"id"`
	PropertyID string      `json:"property_id"`
	TenantID   *string     `json:"tenant_id,omitempty"` // a lease may be created before a tenant is assigned
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	Status     LeaseStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Property is a rentable unit
type Property struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Tenant is the renting party of a lease
type Tenant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
