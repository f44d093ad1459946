package store

import (
	apperrors "URL_Ping_Monitor/internal/ping-monitor/errors"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type storageItem struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (storageItem) TableName() string {
	return "storage_items"
}

type postgresBackend struct {
	db *gorm.DB
}

func (p *postgresBackend) Load(ctx context.Context, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	var items []storageItem
	result := p.db.WithContext(ctx).Where("key IN ?", keys).Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("postgresBackend.Load: %w", result.Error)
	}
	for _, item := range items {
		out[item.Key] = item.Value
	}
	return out, nil
}

func (p *postgresBackend) Save(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}
	items := make([]storageItem, 0, len(values))
	for k, v := range values {
		items = append(items, storageItem{Key: k, Value: v})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })

	result := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&items)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && (pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.UniqueViolation) {
			return fmt.Errorf("postgresBackend.Save: %w", apperrors.ErrStoreConflict)
		}
		return fmt.Errorf("postgresBackend.Save: %w", result.Error)
	}
	return nil
}

func (p *postgresBackend) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("postgresBackend.Close: %w", err)
	}
	return sqlDB.Close()
}

// MigratePostgres creates the storage table.
func MigratePostgres(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&storageItem{}); err != nil {
		return fmt.Errorf("MigratePostgres: %w", err)
	}
	return nil
}

func NewPostgresBackend(db *gorm.DB) Backend {
	return &postgresBackend{db: db}
}
