package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/renthub/backend/internal/contracts"
	"github.com/wonny/renthub/backend/pkg/logger"
	"github.com/wonny/renthub/backend/pkg/redis"
)

// directoryCacheKey is the Redis key holding the serialized party directory
const directoryCacheKey = "party_directory"

// Engine derives reminder activities from the lease book and writes them
// through the activity sink. Implements contracts.ActivityEngine.
// ⭐ SSOT: 활동 생성 오케스트레이션은 여기서만
type Engine struct {
	leases     contracts.LeaseRepository
	properties contracts.PropertyRepository
	tenants    contracts.TenantRepository
	sink       contracts.ActivityRepository
	cache      *redis.Cache // optional; nil disables directory caching
	cacheTTL   time.Duration
	locale     string
	logger     *logger.Logger
}

// Option configures optional Engine behavior
type Option func(*Engine)

// WithDirectoryCache serves the party directory from Redis between runs.
// Cache failures degrade to a fresh repository read, never to a run failure.
func WithDirectoryCache(cache *redis.Cache, ttl time.Duration) Option {
	return func(e *Engine) {
		e.cache = cache
		e.cacheTTL = ttl
	}
}

// WithLocale sets the locale for the month label in payment reminder text
func WithLocale(locale string) Option {
	return func(e *Engine) {
		e.locale = locale
	}
}

// NewEngine creates a new activity generation engine
func NewEngine(
	leases contracts.LeaseRepository,
	properties contracts.PropertyRepository,
	tenants contracts.TenantRepository,
	sink contracts.ActivityRepository,
	log *logger.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		leases:     leases,
		properties: properties,
		tenants:    tenants,
		sink:       sink,
		locale:     "en",
		logger:     log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate runs one full generation pass for the given reference date.
//
// Leases are read once and filtered to active; party names are resolved
// through a directory built from one read per repository. For each active
// lease the expiration reminders come first, then the rent schedule. Each
// candidate is written through the sink independently: a rejected write
// is logged and skipped, never aborting the batch. Only a failed lease or
// directory read is fatal to the run.
func (e *Engine) Generate(ctx context.Context, today time.Time) ([]*contracts.Activity, error) {
	leases, err := e.leases.GetAll(ctx)
	if err != nil {
		e.logger.WithError(err).Error("Failed to list leases")
		return nil, fmt.Errorf("activity: list leases: %w", err)
	}

	dir, err := e.loadDirectory(ctx)
	if err != nil {
		e.logger.WithError(err).Error("Failed to build party directory")
		return nil, fmt.Errorf("activity: %w", err)
	}

	created := make([]*contracts.Activity, 0)
	skipped := 0

	for _, lease := range leases {
		if lease.Status != contracts.LeaseStatusActive {
			continue
		}

		names := dir.Names(lease)

		candidates := ExpirationReminders(lease, names, today)
		candidates = append(candidates, RentReminders(lease, names, today, e.locale)...)

		for _, candidate := range candidates {
			stored, err := e.sink.Create(ctx, candidate)
			if err != nil {
				skipped++
				e.logger.WithError(err).WithFields(map[string]interface{}{
					"lease": lease.ID,
					"type":  candidate.Type,
					"date":  candidate.Date.Format("2006-01-02"),
				}).Error("Failed to persist activity, skipping")
				continue
			}
			created = append(created, stored)
		}
	}

	e.logger.WithFields(map[string]interface{}{
		"created": len(created),
		"skipped": skipped,
		"today":   today.Format("2006-01-02"),
	}).Info("Activity generation completed")

	return created, nil
}

// loadDirectory returns the party directory, served from the cache when
// one is configured and warm.
func (e *Engine) loadDirectory(ctx context.Context) (*Directory, error) {
	if e.cache != nil {
		var cached Directory
		hit, err := e.cache.Get(ctx, directoryCacheKey, &cached)
		if err != nil {
			e.logger.WithError(err).Warn("Party directory cache read failed")
		} else if hit && cached.Properties != nil && cached.Tenants != nil {
			return &cached, nil
		}
	}

	dir, err := BuildDirectory(ctx, e.properties, e.tenants)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, directoryCacheKey, dir, e.cacheTTL); err != nil {
			e.logger.WithError(err).Warn("Party directory cache write failed")
		}
	}

	return dir, nil
}
