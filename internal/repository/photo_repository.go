package repository

import (
	"Coldbox/internal/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type PhotoRepository interface {
	GenericRepository[models.Photo]
	FindByKey(ctx context.Context, key string) (*models.Photo, error)
	AttachToRecord(ctx context.Context, keys []string, recordID uint) error
	FindOrphans(ctx context.Context, createdBefore time.Time) ([]models.Photo, error)
}

type PhotoRepositoryImpl struct {
	GenericRepository[models.Photo]
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &PhotoRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Photo](db),
		db:                db,
	}
}

func (r *PhotoRepositoryImpl) FindByKey(ctx context.Context, key string) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).Where("object_key = ?", key).First(&photo).Error
	if err != nil {
		return nil, translate(err)
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) AttachToRecord(ctx context.Context, keys []string, recordID uint) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Photo{}).
		Where("object_key IN ? AND record_id IS NULL", keys).
		Update("record_id", recordID).Error
}

// referencedKeys covers photos whose attach step failed after the record
// itself was written.
func (r *PhotoRepositoryImpl) referencedKeys() *gorm.DB {
	return r.db.Raw(`SELECT label_photo FROM exchange_records
		UNION SELECT medicine_photo FROM exchange_records
		UNION SELECT ice_photo FROM exchange_records`)
}

func (r *PhotoRepositoryImpl) FindOrphans(ctx context.Context, createdBefore time.Time) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.WithContext(ctx).
		Where("record_id IS NULL AND created_at < ?", createdBefore).
		Where("object_key NOT IN (?)", r.referencedKeys()).
		Order("created_at ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}
