package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry é a linha da tabela kv_entries
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore guarda cada chave como uma linha (postgres ou sqlite)
type GormStore struct {
	db     *gorm.DB
	driver Driver
}

// NewGormStore migra a tabela e devolve o store
func NewGormStore(db *gorm.DB, driver Driver) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("kvstore: migrate kv_entries: %w", err)
	}
	return &GormStore{db: db, driver: driver}, nil
}

func (g *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	err := g.db.WithContext(ctx).
		Where("entry_key = ?", key).
		First(&e).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kvstore: select %q: %w", key, err)
	}
	return e.Value, true, nil
}

func (g *GormStore) Set(ctx context.Context, key, value string) error {
	e := Entry{Key: key, Value: value, UpdatedAt: time.Now()}

	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&e).Error
	if err != nil {
		return fmt.Errorf("kvstore: upsert %q: %w", key, err)
	}
	return nil
}

func (g *GormStore) Remove(ctx context.Context, key string) error {
	return g.MultiRemove(ctx, key)
}

func (g *GormStore) MultiRemove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := g.db.WithContext(ctx).
		Where("entry_key IN ?", keys).
		Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("kvstore: delete: %w", err)
	}
	return nil
}

func (g *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (g *GormStore) Driver() Driver { return g.driver }

var _ Store = (*GormStore)(nil)
