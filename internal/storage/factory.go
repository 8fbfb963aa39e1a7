package storage

import (
	"Coldbox/internal/config"
	"context"
	"fmt"
	"os"
)

// NewStore builds the backend selected by storage.driver. S3 credentials
// come from AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN
// when set, otherwise from the default AWS credential chain.
func NewStore(configuration *config.Configuration) (Store, error) {
	cfg := configuration.Storage
	switch Driver(cfg.Driver) {
	case DriverFilesystem, "":
		return NewFilesystemStore(cfg.Path)
	case DriverS3:
		return NewS3Store(context.Background(), S3Options{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			PathStyle:       cfg.S3.PathStyle,
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
