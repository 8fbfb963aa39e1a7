package services

import (
	"Coldbox/internal/config"
	"Coldbox/internal/lifecycle"
	"Coldbox/internal/models"
	"Coldbox/internal/repository"
	"Coldbox/internal/storage"
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)

type testEnv struct {
	db            *gorm.DB
	configuration *config.Configuration
	store         storage.Store
	metrics       *MetricsService
	logService    LogService
	boxModels     BoxModelService
	photos        PhotoService
	exchanges     ExchangeService
	records       repository.ExchangeRecordRepository
	photoRepo     repository.PhotoRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.BoxModel{}, &models.ExchangeRecord{}, &models.Photo{}))

	cfg := config.Default()
	cfg.Storage.Path = t.TempDir()
	store, err := storage.NewStore(cfg)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logService := LogService{Log: logger}

	env := &testEnv{
		db:            db,
		configuration: cfg,
		store:         store,
		metrics:       NewMetricsService(),
		logService:    logService,
		records:       repository.NewExchangeRecordRepository(db),
		photoRepo:     repository.NewPhotoRepository(db),
	}
	env.boxModels = NewBoxModelService(repository.NewBoxModelRepository(db))
	require.NoError(t, env.boxModels.SeedCatalog(context.Background()))
	photos := NewPhotoService(env.photoRepo, store, cfg, logService)
	photos.(*PhotoServiceImpl).now = func() time.Time { return testNow }
	env.photos = photos
	env.exchanges = NewExchangeService(
		env.records,
		env.boxModels,
		env.photos,
		lifecycle.NewLifecycle(lifecycle.FixedClock{At: testNow}),
		env.metrics,
		logService,
		cfg,
	)
	return env
}

// uploads builds multipart file headers the way a browser form would send
// them.
func uploads(t *testing.T, names ...string) map[string]*multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range names {
		part, err := writer.CreateFormFile(name, name+".jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("photo of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := make(map[string]*multipart.FileHeader, len(names))
	for _, name := range names {
		headers[name] = form.File[name][0]
	}
	return headers
}

func celsius(v float64) *float64 { return &v }

func validSubmission(t *testing.T) Submission {
	files := uploads(t, "label_photo", "medicine_photo", "ice_photo")
	return Submission{
		BoxModelID:          "12L_IF2000",
		OrderNumber:         "PED-2026-001",
		PackagedOn:          time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
		MedicineTemperature: celsius(5.0),
		IceTemperature:      celsius(-7.0),
		LabelPhoto:          files["label_photo"],
		MedicinePhoto:       files["medicine_photo"],
		IcePhoto:            files["ice_photo"],
	}
}
