package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/manicure-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/manicure-agenda/internal/db"
)

// Open escolhe o backend pelo STORAGE_DRIVER e confere a conexão
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (Store, error) {
	var (
		s   Store
		err error
	)

	switch Driver(cfg.StorageDriver) {
	case DriverMemory:
		s = NewMemoryStore()

	case DriverFile:
		s, err = NewFileStore(afero.NewOsFs(), cfg.StorageFile)

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		s = NewRedisStore(client, cfg.RedisPrefix)

	case DriverPostgres, DriverSQLite:
		db, dbErr := dbpkg.NewDB(cfg, log)
		if dbErr != nil {
			return nil, dbErr
		}
		s, err = NewGormStore(db, Driver(cfg.StorageDriver))

	default:
		return nil, fmt.Errorf("kvstore: unknown driver %q", cfg.StorageDriver)
	}

	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.Ping(pingCtx); err != nil {
		log.Error("storage ping failed",
			zap.String("driver", cfg.StorageDriver),
			zap.Error(err))
		return nil, fmt.Errorf("kvstore: ping %s: %w", cfg.StorageDriver, err)
	}

	log.Info("storage ready", zap.String("driver", cfg.StorageDriver))
	return s, nil
}
