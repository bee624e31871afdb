package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/renthub/backend/internal/contracts"
)

// LeaseRepository implements contracts.LeaseRepository
// ⭐ SSOT: 임대 계약 저장소는 여기서만
type LeaseRepository struct {
	pool *pgxpool.Pool
}

// NewLeaseRepository creates a new lease repository
func NewLeaseRepository(pool *pgxpool.Pool) *LeaseRepository {
	return &LeaseRepository{pool: pool}
}

const leaseColumns = `id, property_id, tenant_id, start_date, end_date, status, created_at`

// GetAll retrieves every lease contract
func (r *LeaseRepository) GetAll(ctx context.Context) ([]*contracts.Lease, error) {
	query := `
		SELECT ` + leaseColumns + `
		FROM leases
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeases(rows)
}

// GetByID retrieves a single lease
func (r *LeaseRepository) GetByID(ctx context.Context, id string) (*contracts.Lease, error) {
	query := `
		SELECT ` + leaseColumns + `
		FROM leases
		WHERE id = $1
	`

	var l contracts.Lease
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.PropertyID, &l.TenantID, &l.StartDate, &l.EndDate, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetByStatus retrieves leases in a given lifecycle state
func (r *LeaseRepository) GetByStatus(ctx context.Context, status contracts.LeaseStatus) ([]*contracts.Lease, error) {
	query := `
		SELECT ` + leaseColumns + `
		FROM leases
		WHERE status = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeases(rows)
}

func scanLeases(rows pgx.Rows) ([]*contracts.Lease, error) {
	var leases []*contracts.Lease
	for rows.Next() {
		var l contracts.Lease
		if err := rows.Scan(&l.ID, &l.PropertyID, &l.TenantID, &l.StartDate, &l.EndDate, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		leases = append(leases, &l)
	}
	return leases, rows.Err()
}
