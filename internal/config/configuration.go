package config

import (
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const defaultConfigurationFile = "coldbox.yaml"

type Configuration struct {
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Compliance ComplianceConfig `yaml:"compliance"`
}

type StorageConfig struct {
	Driver    string        `yaml:"driver"`
	Path      string        `yaml:"path"`
	OrphanTTL time.Duration `yaml:"orphanTTL"`
	S3        S3Config      `yaml:"s3"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"pathStyle"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	// SizeLimit is in megabytes.
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type ComplianceConfig struct {
	RejectNonCompliant bool `yaml:"rejectNonCompliant"`
}

// Provide loads the configuration file named by COLDBOX_CONFIG, or
// coldbox.yaml in the working directory.
func Provide() (*Configuration, error) {
	path := os.Getenv("COLDBOX_CONFIG")
	if path == "" {
		path = defaultConfigurationFile
	}
	return LoadConfiguration(path)
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Default returns the values used for keys missing from the file.
func Default() *Configuration {
	return &Configuration{
		Storage: StorageConfig{
			Driver:    "fs",
			Path:      "./data/photos",
			OrphanTTL: 24 * time.Hour,
			S3:        S3Config{Region: "us-east-1"},
		},
		Server: ServerConfig{
			Port:          8080,
			Concurrency:   256,
			RequestConfig: RequestConfig{SizeLimit: 40},
			LogConfig:     LogConfig{Level: "info", Format: "text", Output: "stdout"},
			CleanConfig:   CleanConfig{Schedule: "@every 1h"},
		},
		Database:   DatabaseConfig{Driver: "postgres"},
		Compliance: ComplianceConfig{RejectNonCompliant: true},
	}
}
