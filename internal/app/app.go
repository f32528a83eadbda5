package app

import (
	"context"

	"github.com/HorizonColonel/orient-launch-pad/internal/config"
	"github.com/HorizonColonel/orient-launch-pad/internal/messaging/kafka"
	"github.com/HorizonColonel/orient-launch-pad/internal/progress"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/connection"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/migration"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/retry"
	"github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule"
	"github.com/HorizonColonel/orient-launch-pad/internal/userprofile"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the stores, applies migrations and mounts every module on
// router. The returned function releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	gormDB, err := connectDB(cfg, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Database.RunMigrations {
		if err := migration.Run(sqlDB, logger.Named("migration")); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Database.ConnectRetry, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if err := registerModules(router, cfg, gormDB, rdb, logger); err != nil {
		_ = rdb.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	return func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}, nil
}

func connectDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return connection.ConnectGORMWithRetry(
		cfg.Database.DSN(),
		connection.PoolConfig{
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		},
		cfg.Database.ConnectRetry,
		logger,
	)
}

func storePolicy(cfg config.StoreConfig) retry.Policy {
	return retry.Policy{
		Attempts:  cfg.RetryAttempts,
		BaseDelay: cfg.RetryBase,
		MaxDelay:  cfg.RetryMax,
		Timeout:   cfg.Timeout,
	}
}

// services is the domain layer shared by the API and the consumer.
type services struct {
	profiles userprofile.Service
	modules  trainingmodule.Service
	progress progress.Service
}

// progressRef lets the module catalog invalidate progress snapshots although it
// is built before the progress engine that depends on it.
type progressRef struct {
	progress.Service
}

func (r *progressRef) InvalidateCompany(ctx context.Context, companyID string) error {
	if r.Service == nil {
		return nil
	}
	return r.Service.InvalidateCompany(ctx, companyID)
}

func buildServices(cfg *config.Config, gormDB *gorm.DB, rdb *redis.Client, logger *zap.Logger) services {
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	profiles := userprofile.NewService(userprofile.NewRepository(gormDB), rdb, cfg.Cache.DirectoryTTL, logger)

	ref := &progressRef{}
	modules := trainingmodule.NewService(gormDB, trainingmodule.NewRepository(gormDB), outboxRepo, ref, logger)

	ref.Service = progress.NewService(
		gormDB,
		progress.NewRepository(gormDB),
		progress.NewSnapshotStore(rdb, cfg.Cache.SnapshotTTL, logger),
		modules,
		profiles,
		outboxRepo,
		storePolicy(cfg.Store),
		logger,
	)

	return services{profiles: profiles, modules: modules, progress: ref.Service}
}
