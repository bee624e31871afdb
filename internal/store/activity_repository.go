package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/renthub/backend/internal/contracts"
)

// ActivityRepository implements contracts.ActivityRepository — the
// engine's persistence sink. Deduplication across runs is enforced here,
// not in the engine: the unique index on (related_id, type, date) makes
// repeated runs idempotent at the storage level.
// ⭐ SSOT: 활동 저장소는 여기서만
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

const activityColumns = `id, description, property_id, property_name, tenant_id, tenant_name, date, type, priority, status, related_id, created_at`

// Create persists one generated activity and returns the stored record
// with its assigned id
func (r *ActivityRepository) Create(ctx context.Context, activity *contracts.Activity) (*contracts.Activity, error) {
	stored := *activity
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()
	if stored.Status == "" {
		stored.Status = contracts.ActivityStatusPending
	}

	query := `
		INSERT INTO activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		stored.ID, stored.Description, stored.PropertyID, stored.PropertyName,
		stored.TenantID, stored.TenantName, stored.Date, stored.Type,
		stored.Priority, stored.Status, stored.RelatedID, stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	return &stored, nil
}

// GetByStatus retrieves activities in a given workflow state, soonest first
func (r *ActivityRepository) GetByStatus(ctx context.Context, status contracts.ActivityStatus) ([]*contracts.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE status = $1
		ORDER BY date ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// GetByRelatedID retrieves all activities generated from one lease
func (r *ActivityRepository) GetByRelatedID(ctx context.Context, relatedID string) ([]*contracts.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE related_id = $1
		ORDER BY date ASC
	`

	rows, err := r.pool.Query(ctx, query, relatedID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// UpdateStatus moves one activity to a new workflow state
func (r *ActivityRepository) UpdateStatus(ctx context.Context, id string, status contracts.ActivityStatus) error {
	query := `
		UPDATE activities
		SET status = $2
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update activity status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", id)
	}
	return nil
}

func scanActivities(rows pgx.Rows) ([]*contracts.Activity, error) {
	var activities []*contracts.Activity
	for rows.Next() {
		var a contracts.Activity
		if err := rows.Scan(
			&a.ID, &a.Description, &a.PropertyID, &a.PropertyName,
			&a.TenantID, &a.TenantName, &a.Date, &a.Type,
			&a.Priority, &a.Status, &a.RelatedID, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		activities = append(activities, &a)
	}
	return activities, rows.Err()
}
