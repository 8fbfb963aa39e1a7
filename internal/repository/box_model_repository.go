package repository

import (
	"Coldbox/internal/models"
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoxModelRepository interface {
	FindAll(ctx context.Context) ([]models.BoxModel, error)
	FindByID(ctx context.Context, id string) (*models.BoxModel, error)
	Seed(ctx context.Context, boxModels []models.BoxModel) error
}

type BoxModelRepositoryImpl struct {
	db *gorm.DB
}

func NewBoxModelRepository(db *gorm.DB) BoxModelRepository {
	return &BoxModelRepositoryImpl{db: db}
}

func (r *BoxModelRepositoryImpl) FindAll(ctx context.Context) ([]models.BoxModel, error) {
	var boxModels []models.BoxModel
	err := r.db.WithContext(ctx).Order("liters ASC, id ASC").Find(&boxModels).Error
	return boxModels, err
}

func (r *BoxModelRepositoryImpl) FindByID(ctx context.Context, id string) (*models.BoxModel, error) {
	var boxModel models.BoxModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&boxModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return &boxModel, nil
}

// Seed inserts catalog rows, refreshing the descriptive columns of rows that
// already exist.
func (r *BoxModelRepositoryImpl) Seed(ctx context.Context, boxModels []models.BoxModel) error {
	if len(boxModels) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "liters", "ice_packs", "ice_pack_type"}),
	}).Create(&boxModels).Error
}
