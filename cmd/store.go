package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CareSlotService/internal/config"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/mongostore"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/pgstore"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/redisstore"
	"github.com/m04kA/SMC-CareSlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CareSlotService/pkg/logger"
	"github.com/m04kA/SMC-CareSlotService/pkg/metrics"
)

// openStore builds the slot store selected by store.driver. The returned
// cleanup releases whatever the backend holds open.
func openStore(
	ctx context.Context,
	cfg *config.Config,
	m *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (storage.SlotStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		log.Info("Using in-memory slot store")
		return memstore.NewRepository(), func() {}, nil

	case config.DriverPostgres:
		return openPostgres(ctx, cfg, m, stopMetricsCh, log)

	case config.DriverRedis:
		repo, err := redisstore.NewRepository(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Namespace)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis store: %w", err)
		}
		if err := repo.Ping(ctx); err != nil {
			_ = repo.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		log.Info("Successfully connected to redis (addr=%s, namespace=%s)", cfg.Redis.Addr, cfg.Redis.Namespace)
		return repo, func() { _ = repo.Close() }, nil

	case config.DriverMongo:
		repo, err := mongostore.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection,
			cfg.Mongo.TimeoutDuration())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = repo.Close()
			return nil, nil, fmt.Errorf("failed to create mongo indexes: %w", err)
		}
		log.Info("Successfully connected to mongo (db=%s, collection=%s)", cfg.Mongo.Database, cfg.Mongo.Collection)
		return repo, func() { _ = repo.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func openPostgres(
	ctx context.Context,
	cfg *config.Config,
	m *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (storage.SlotStore, func(), error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.Migrate {
		if err := pgstore.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		version, _ := pgstore.SchemaVersion(ctx, db)
		log.Info("Database migrations applied (version=%d)", version)
	}

	if m != nil {
		wrapped := dbmetrics.WrapWithDefault(db, m, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
		return pgstore.NewRepository(wrapped), func() { _ = db.Close() }, nil
	}
	return pgstore.NewRepository(db), func() { _ = db.Close() }, nil
}
