package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"skillmap/internal/config"
	"skillmap/internal/database"
	"skillmap/internal/database/migration"
	dbpostgres "skillmap/internal/database/postgres"
	"skillmap/internal/database/seeder"
	"skillmap/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migrateAndSeed(ctx, cfg, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

func migrateAndSeed(ctx context.Context, cfg config.Config, db database.DB) error {
	if cfg.App.MigrationsDir != "" {
		runner := migration.Runner{Dir: cfg.App.MigrationsDir}
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	seedRunner := seeder.Runner{Seeders: seeder.Defaults(cfg.App.SeedFile)}
	if err := seedRunner.Run(ctx, db); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
