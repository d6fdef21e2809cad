package product

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/maximebaudoin/expired-products/entities"
)

type (
	StorageRepository interface {
		GetEntry(ctx context.Context, key string) (*entities.StorageEntry, error)
		PutEntry(ctx context.Context, entry *entities.StorageEntry) error
	}

	storageRepository struct {
		db *gorm.DB
	}
)

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepository{db: db}
}

// GetEntry returns nil without error when the key has never been written.
func (r *storageRepository) GetEntry(ctx context.Context, key string) (*entities.StorageEntry, error) {
	var entry entities.StorageEntry
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *storageRepository) PutEntry(ctx context.Context, entry *entities.StorageEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
}
