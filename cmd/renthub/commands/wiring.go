package commands

import (
	"fmt"

	"github.com/wonny/renthub/backend/internal/activity"
	"github.com/wonny/renthub/backend/internal/store"
	"github.com/wonny/renthub/backend/pkg/config"
	"github.com/wonny/renthub/backend/pkg/database"
	"github.com/wonny/renthub/backend/pkg/logger"
	"github.com/wonny/renthub/backend/pkg/redis"
)

// runtime bundles the dependencies every command starts from
type runtime struct {
	cfg   *config.Config
	log   *logger.Logger
	db    *database.DB
	redis *redis.Client
}

// initRuntime loads config and connects to the database and (optionally) Redis
func initRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &runtime{cfg: cfg, log: log, db: db, redis: redisClient}, nil
}

// close releases the runtime's connections
func (rt *runtime) close() {
	rt.db.Close()
	_ = rt.redis.Close()
}

// buildEngine wires the activity engine against the Postgres repositories
func buildEngine(rt *runtime) *activity.Engine {
	leaseRepo := store.NewLeaseRepository(rt.db.Pool)
	propertyRepo := store.NewPropertyRepository(rt.db.Pool)
	tenantRepo := store.NewTenantRepository(rt.db.Pool)
	activityRepo := store.NewActivityRepository(rt.db.Pool)

	opts := []activity.Option{
		activity.WithLocale(rt.cfg.Engine.Locale),
	}
	if rt.redis.Enabled() {
		cache := redis.NewCache(rt.redis, "renthub")
		opts = append(opts, activity.WithDirectoryCache(cache, rt.cfg.Engine.DirectoryCacheTTL))
	}

	return activity.NewEngine(leaseRepo, propertyRepo, tenantRepo, activityRepo, rt.log, opts...)
}
