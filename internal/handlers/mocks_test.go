package handlers

import (
	"Coldbox/internal/compliance"
	"Coldbox/internal/models"
	"Coldbox/internal/repository"
	"Coldbox/internal/services"
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) Submit(ctx context.Context, submission services.Submission) (*services.SubmissionResult, error) {
	args := m.Called(ctx, submission)
	if result, ok := args.Get(0).(*services.SubmissionResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExchangeService) GetExchange(ctx context.Context, id uint) (*models.ExchangeRecord, error) {
	args := m.Called(ctx, id)
	if record, ok := args.Get(0).(*models.ExchangeRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExchangeService) ListExchanges(ctx context.Context, filter repository.ExchangeFilter) ([]models.ExchangeRecord, error) {
	args := m.Called(ctx, filter)
	if records, ok := args.Get(0).([]models.ExchangeRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExchangeService) UpdateOperator(ctx context.Context, id uint, operator *string) (*models.ExchangeRecord, error) {
	args := m.Called(ctx, id, operator)
	if record, ok := args.Get(0).(*models.ExchangeRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExchangeService) CheckCompliance(ctx context.Context, boxModelID string, medicineTemp, iceTemp *float64) (compliance.Report, error) {
	args := m.Called(ctx, boxModelID, medicineTemp, iceTemp)
	return args.Get(0).(compliance.Report), args.Error(1)
}

type MockBoxModelService struct {
	mock.Mock
}

func (m *MockBoxModelService) GetBoxModel(ctx context.Context, id string) (*models.BoxModel, error) {
	args := m.Called(ctx, id)
	if boxModel, ok := args.Get(0).(*models.BoxModel); ok {
		return boxModel, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBoxModelService) GetBoxModels(ctx context.Context) ([]services.BoxModelView, error) {
	args := m.Called(ctx)
	if views, ok := args.Get(0).([]services.BoxModelView); ok {
		return views, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBoxModelService) Describe(ctx context.Context, id string) (*services.BoxModelView, error) {
	args := m.Called(ctx, id)
	if view, ok := args.Get(0).(*services.BoxModelView); ok {
		return view, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBoxModelService) SeedCatalog(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) StorePhoto(ctx context.Context, kind models.PhotoKind, fileHeader *multipart.FileHeader) (*models.Photo, error) {
	args := m.Called(ctx, kind, fileHeader)
	if photo, ok := args.Get(0).(*models.Photo); ok {
		return photo, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPhotoService) AttachPhotos(ctx context.Context, recordID uint, keys ...string) error {
	return m.Called(ctx, recordID, keys).Error(0)
}

func (m *MockPhotoService) OpenPhoto(ctx context.Context, key string) (*models.Photo, io.ReadCloser, error) {
	args := m.Called(ctx, key)
	photo, _ := args.Get(0).(*models.Photo)
	body, _ := args.Get(1).(io.ReadCloser)
	return photo, body, args.Error(2)
}

func (m *MockPhotoService) FindOrphans(ctx context.Context, olderThan time.Duration) ([]models.Photo, error) {
	args := m.Called(ctx, olderThan)
	photos, _ := args.Get(0).([]models.Photo)
	return photos, args.Error(1)
}

func (m *MockPhotoService) DeletePhoto(ctx context.Context, photo models.Photo) error {
	return m.Called(ctx, photo).Error(0)
}
