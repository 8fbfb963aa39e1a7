package services

import (
	"Coldbox/internal/config"
	"Coldbox/internal/helpers"
	"Coldbox/internal/models"
	"Coldbox/internal/repository"
	"Coldbox/internal/storage"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PhotoService interface {
	StorePhoto(ctx context.Context, kind models.PhotoKind, fileHeader *multipart.FileHeader) (*models.Photo, error)
	AttachPhotos(ctx context.Context, recordID uint, keys ...string) error
	OpenPhoto(ctx context.Context, key string) (*models.Photo, io.ReadCloser, error)
	FindOrphans(ctx context.Context, olderThan time.Duration) ([]models.Photo, error)
	DeletePhoto(ctx context.Context, photo models.Photo) error
}

type PhotoServiceImpl struct {
	photoRepository repository.PhotoRepository
	store           storage.Store
	configuration   *config.Configuration
	logService      LogService
	now             func() time.Time
}

func NewPhotoService(
	photoRepository repository.PhotoRepository,
	store storage.Store,
	configuration *config.Configuration,
	logService LogService,
) PhotoService {
	return &PhotoServiceImpl{
		photoRepository: photoRepository,
		store:           store,
		configuration:   configuration,
		logService:      logService,
		now:             time.Now,
	}
}

// photoKey lays photos out per kind and upload day, e.g.
// exchanges/label/2026/10/16/<uuid>.jpg
func photoKey(kind models.PhotoKind, at time.Time, fileName string) string {
	return path.Join(
		"exchanges",
		string(kind),
		at.UTC().Format("2006/01/02"),
		uuid.NewString()+helpers.GetFileExtension(fileName),
	)
}

func (s *PhotoServiceImpl) StorePhoto(ctx context.Context, kind models.PhotoKind, fileHeader *multipart.FileHeader) (*models.Photo, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file for %s photo", kind)
	}
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	sha256sum, size, err := helpers.ComputeChecksum(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compute checksum: %w", err)
	}

	key := photoKey(kind, s.now(), fileHeader.Filename)
	contentType := helpers.GetContentType(fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	_, err = s.store.Put(ctx, key, src, storage.PutOptions{
		ContentType: contentType,
		Size:        size,
		Metadata:    map[string]string{"kind": string(kind), "sha256": sha256sum},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	photo := &models.Photo{
		Key:         key,
		Kind:        kind,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        size,
		SHA256:      sha256sum,
	}
	if err := s.photoRepository.Create(ctx, photo); err != nil {
		if _, delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"key":   key,
				"error": delErr.Error(),
			}).Warn("failed to remove photo after record error")
		}
		return nil, fmt.Errorf("failed to create photo record: %w", err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"key":    key,
		"kind":   kind,
		"size":   size,
		"sha256": sha256sum,
		"driver": s.store.Driver(),
	}).Debug("photo stored")
	return photo, nil
}

func (s *PhotoServiceImpl) AttachPhotos(ctx context.Context, recordID uint, keys ...string) error {
	return s.photoRepository.AttachToRecord(ctx, keys, recordID)
}

func (s *PhotoServiceImpl) OpenPhoto(ctx context.Context, key string) (*models.Photo, io.ReadCloser, error) {
	photo, err := s.photoRepository.FindByKey(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	_, body, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, repository.ErrNotFound
		}
		return nil, nil, err
	}
	return photo, body, nil
}

func (s *PhotoServiceImpl) FindOrphans(ctx context.Context, olderThan time.Duration) ([]models.Photo, error) {
	return s.photoRepository.FindOrphans(ctx, s.now().Add(-olderThan))
}

func (s *PhotoServiceImpl) DeletePhoto(ctx context.Context, photo models.Photo) error {
	if _, err := s.store.Delete(ctx, photo.Key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", photo.Key, err)
	}
	return s.photoRepository.Delete(ctx, photo.ID)
}
