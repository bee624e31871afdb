package contracts

import "context"

// ⭐ SSOT: Repository 인터페이스 정의는 여기서만

// LeaseRepository reads the lease contract book
type LeaseRepository interface {
	GetAll(ctx context.Context) ([]*Lease, error)
	GetByID(ctx context.Context, id string) (*Lease, error)
	GetByStatus(ctx context.Context, status LeaseStatus) ([]*Lease, error)
}

// PropertyRepository reads property records
type PropertyRepository interface {
	GetAll(ctx context.Context) ([]*Property, error)
	GetByID(ctx context.Context, id string) (*Property, error)
}

// TenantRepository reads tenant records
type TenantRepository interface {
	GetAll(ctx context.Context) ([]*Tenant, error)
	GetByID(ctx context.Context, id string) (*Tenant, error)
}

// ActivityRepository persists generated reminders. Create returns the
// stored record with its assigned id.
type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) (*Activity, error)
	GetByStatus(ctx context.Context, status ActivityStatus) ([]*Activity, error)
	GetByRelatedID(ctx context.Context, relatedID string) ([]*Activity, error)
	UpdateStatus(ctx context.Context, id string, status ActivityStatus) error
}
