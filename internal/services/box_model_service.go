package services

import (
	"Coldbox/internal/catalog"
	"Coldbox/internal/compliance"
	"Coldbox/internal/models"
	"Coldbox/internal/repository"
	"Coldbox/internal/validation"
	"context"
	"errors"
	"fmt"
)

// BoxModelView is a catalog entry together with the ranges that apply to it.
type BoxModelView struct {
	models.BoxModel
	MedicineRange compliance.Range `json:"medicine_range"`
	IceRange      compliance.Range `json:"ice_range"`
	Precaution    bool             `json:"precaution"`
}

type BoxModelService interface {
	GetBoxModel(ctx context.Context, id string) (*models.BoxModel, error)
	GetBoxModels(ctx context.Context) ([]BoxModelView, error)
	Describe(ctx context.Context, id string) (*BoxModelView, error)
	SeedCatalog(ctx context.Context) error
}

func NewBoxModelService(boxModelRepo repository.BoxModelRepository) BoxModelService {
	return &boxModelServiceImpl{boxModelRepo: boxModelRepo}
}

type boxModelServiceImpl struct {
	boxModelRepo repository.BoxModelRepository
}

// GetBoxModel fails with validation.ErrUnknownBoxModel for identifiers
// outside the catalog.
func (s *boxModelServiceImpl) GetBoxModel(ctx context.Context, id string) (*models.BoxModel, error) {
	if !catalog.Contains(id) {
		return nil, fmt.Errorf("%w: %q", validation.ErrUnknownBoxModel, id)
	}
	boxModel, err := s.boxModelRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", validation.ErrUnknownBoxModel, id)
		}
		return nil, err
	}
	return boxModel, nil
}

func (s *boxModelServiceImpl) GetBoxModels(ctx context.Context) ([]BoxModelView, error) {
	boxModels, err := s.boxModelRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]BoxModelView, 0, len(boxModels))
	for _, boxModel := range boxModels {
		views = append(views, describe(boxModel))
	}
	return views, nil
}

func (s *boxModelServiceImpl) Describe(ctx context.Context, id string) (*BoxModelView, error) {
	boxModel, err := s.GetBoxModel(ctx, id)
	if err != nil {
		return nil, err
	}
	view := describe(*boxModel)
	return &view, nil
}

func (s *boxModelServiceImpl) SeedCatalog(ctx context.Context) error {
	entries := catalog.All()
	rows := make([]models.BoxModel, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, models.BoxModelFromCatalog(entry))
	}
	return s.boxModelRepo.Seed(ctx, rows)
}

func describe(boxModel models.BoxModel) BoxModelView {
	return BoxModelView{
		BoxModel:      boxModel,
		MedicineRange: compliance.AcceptableMedicineRange(boxModel.ID),
		IceRange:      compliance.AcceptableIceRange(),
		Precaution:    boxModel.ID == catalog.PrecautionBoxModelID,
	}
}
