package database

import (
	"Coldbox/internal/config"
	"Coldbox/internal/models"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

func SetupDatabase(configuration *config.Configuration) (*gorm.DB, error) {
	dialector, err := dialectorFor(configuration.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if configuration.Database.Driver == DriverSqlite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(&models.BoxModel{}, &models.ExchangeRecord{}, &models.Photo{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(databaseConfig config.DatabaseConfig) (gorm.Dialector, error) {
	switch databaseConfig.Driver {
	case DriverPostgres, "":
		dsn, err := postgresDSN()
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	case DriverSqlite:
		if databaseConfig.Path == "" {
			return nil, fmt.Errorf("sqlite database requires a path")
		}
		if databaseConfig.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(databaseConfig.Path), 0o750); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(databaseConfig.Path), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", databaseConfig.Driver)
	}
}

// postgresDSN reads the connection settings from DB_* variables. DB_SSLMODE
// defaults to disable.
func postgresDSN() (string, error) {
	for _, envVariable := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_TZ"} {
		if os.Getenv(envVariable) == "" {
			return "", fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	if os.Getenv("DB_SSLMODE") == "" {
		if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
			return "", err
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
