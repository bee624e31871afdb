package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/renthub/backend/internal/contracts"
)

// PropertyRepository implements contracts.PropertyRepository
type PropertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

// GetAll retrieves every property
func (r *PropertyRepository) GetAll(ctx context.Context) ([]*contracts.Property, error) {
	query := `
		SELECT id, name, COALESCE(address, '')
		FROM properties
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*contracts.Property
	for rows.Next() {
		var p contracts.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Address); err != nil {
			return nil, err
		}
		properties = append(properties, &p)
	}
	return properties, rows.Err()
}

// GetByID retrieves a single property
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*contracts.Property, error) {
	query := `
		SELECT id, name, COALESCE(address, '')
		FROM properties
		WHERE id = $1
	`

	var p contracts.Property
	if err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Address); err != nil {
		return nil, err
	}
	return &p, nil
}

// TenantRepository implements contracts.TenantRepository
type TenantRepository struct {
	pool *pgxpool.Pool
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(pool *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{pool: pool}
}

// GetAll retrieves every tenant
func (r *TenantRepository) GetAll(ctx context.Context) ([]*contracts.Tenant, error) {
	query := `
		SELECT id, name, COALESCE(email, '')
		FROM tenants
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []*contracts.Tenant
	for rows.Next() {
		var t contracts.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Email); err != nil {
			return nil, err
		}
		tenants = append(tenants, &t)
	}
	return tenants, rows.Err()
}

// GetByID retrieves a single tenant
func (r *TenantRepository) GetByID(ctx context.Context, id string) (*contracts.Tenant, error) {
	query := `
		SELECT id, name, COALESCE(email, '')
		FROM tenants
		WHERE id = $1
	`

	var t contracts.Tenant
	if err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Email); err != nil {
		return nil, err
	}
	return &t, nil
}
