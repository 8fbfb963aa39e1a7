package services

import (
	"Coldbox/internal/models"
	"Coldbox/internal/storage"
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJanitor_RemovesOnlyUnattachedPhotos(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.configuration.Storage.OrphanTTL = 0

	result, err := env.exchanges.Submit(ctx, validSubmission(t))
	require.NoError(t, err)

	stray, err := env.photos.StorePhoto(ctx, models.PhotoLabel, uploads(t, "label_photo")["label_photo"])
	require.NoError(t, err)

	// rows are created within the same second as the sweep
	env.photos.(*PhotoServiceImpl).now = func() time.Time { return time.Now().Add(time.Minute) }

	janitor := NewJanitorService(env.photos, env.metrics, env.logService, env.configuration)
	removed, err := janitor.Clean(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.orphansRemoved))

	_, _, err = env.store.Get(ctx, stray.Key)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	for _, key := range []string{result.Record.LabelPhoto, result.Record.MedicinePhoto, result.Record.IcePhoto} {
		_, body, err := env.store.Get(ctx, key)
		require.NoError(t, err, key)
		require.NoError(t, body.Close())
	}
}

func TestJanitor_RespectsOrphanTTL(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.configuration.Storage.OrphanTTL = 24 * time.Hour

	_, err := env.photos.StorePhoto(ctx, models.PhotoIceTemperature, uploads(t, "ice_photo")["ice_photo"])
	require.NoError(t, err)

	janitor := NewJanitorService(env.photos, env.metrics, env.logService, env.configuration)
	removed, err := janitor.Clean(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestJanitor_RejectsConcurrentSweep(t *testing.T) {
	env := newTestEnv(t)
	janitor := NewJanitorService(env.photos, env.metrics, env.logService, env.configuration)

	require.True(t, janitor.begin())
	assert.True(t, janitor.IsCleaning())
	assert.ErrorIs(t, janitor.ForceStartCleanCycle(), ErrCleaningInProgress)
	_, err := janitor.Clean(context.Background())
	assert.ErrorIs(t, err, ErrCleaningInProgress)

	janitor.end()
	assert.False(t, janitor.IsCleaning())
}

func TestJanitor_InvalidSchedule(t *testing.T) {
	env := newTestEnv(t)
	env.configuration.Server.CleanConfig.Schedule = "every now and then"
	janitor := NewJanitorService(env.photos, env.metrics, env.logService, env.configuration)

	assert.Error(t, janitor.StartCleanCycle())

	env.configuration.Server.CleanConfig.Schedule = "@every 1h"
	require.NoError(t, janitor.StartCleanCycle())
	janitor.StopClean()
}
