package services

import (
	"Coldbox/internal/config"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var ErrCleaningInProgress = errors.New("cleaning is in progress")

// Janitor removes uploaded photos that never became part of an exchange
// record, e.g. when a submission failed after its photos were stored.
type Janitor struct {
	photoService  PhotoService
	metrics       *MetricsService
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	photoService PhotoService,
	metrics *MetricsService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		photoService:  photoService,
		metrics:       metrics,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	if !j.begin() {
		return ErrCleaningInProgress
	}
	go func() {
		defer j.end()
		j.startClean(context.Background(), true)
	}()
	return nil
}

func (j *Janitor) StartCleanCycle() error {
	schedule := j.configuration.Server.CleanConfig.Schedule
	j.logService.Log.WithField("cron", schedule).Debug("starting cleaning job")

	_, err := j.cron.AddFunc(schedule, func() {
		if !j.begin() {
			return
		}
		defer j.end()
		j.startClean(context.Background(), false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return fmt.Errorf("invalid clean schedule %q: %w", schedule, err)
	}
	j.cron.Start()
	return nil
}

// StopClean stops the schedule and waits for a running sweep to finish.
func (j *Janitor) StopClean() {
	<-j.cron.Stop().Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

// Clean runs one sweep in the calling goroutine and returns how many photos
// were removed.
func (j *Janitor) Clean(ctx context.Context) (int, error) {
	if !j.begin() {
		return 0, ErrCleaningInProgress
	}
	defer j.end()
	return j.startClean(ctx, true)
}

func (j *Janitor) begin() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) end() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}

func (j *Janitor) startClean(ctx context.Context, forced bool) (int, error) {
	ttl := j.configuration.Storage.OrphanTTL
	orphans, err := j.photoService.FindOrphans(ctx, ttl)
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to find orphan photos")
		return 0, err
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	logFields := logrus.Fields{"job": "clean", "status": "start", "ttl": ttl.String()}
	if forced {
		logFields["status"] = "forced"
	} else {
		logFields["cron"] = j.configuration.Server.CleanConfig.Schedule
	}
	j.logService.Log.WithFields(logFields).Info(fmt.Sprintf("Found %d orphan photos to delete", len(orphans)))

	var deletedCount int
	for _, photo := range orphans {
		if err := j.photoService.DeletePhoto(ctx, photo); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "error",
				"key":    photo.Key,
				"error":  err.Error(),
			}).Error("Failed to delete photo")
			continue
		}
		deletedCount++
	}
	j.metrics.OrphansRemoved(deletedCount)

	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "success",
		"count":  deletedCount,
	}).Info("cleaning job finished")
	return deletedCount, nil
}
