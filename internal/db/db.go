package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/manicure-agenda/internal/config"
)

// NewDB abre a conexão gorm conforme o driver configurado (postgres ou sqlite)
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		PrepareStmt: true,
		Logger: logger.New(
			gormLogAdapter{log},
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	}

	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBUrl)
	case "sqlite":
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite dir: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported sql driver: %s", cfg.StorageDriver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.StorageDriver == "sqlite" {
		// um único escritor no arquivo do dispositivo
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	return db, nil
}

type gormLogAdapter struct {
	log *zap.Logger
}

func (l gormLogAdapter) Printf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
