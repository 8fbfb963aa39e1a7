//go:build wireinject
// +build wireinject

package main

import (
	"Coldbox/cmd"
	"Coldbox/database"
	"Coldbox/internal/config"
	"Coldbox/internal/handlers"
	"Coldbox/internal/lifecycle"
	"Coldbox/internal/repository"
	"Coldbox/internal/services"
	"Coldbox/internal/storage"

	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		config.Provide,
		database.SetupDatabase,
		storage.NewStore,
		lifecycle.NewSystemClock,
		lifecycle.NewLifecycle,
		repository.NewBoxModelRepository,
		repository.NewExchangeRecordRepository,
		repository.NewPhotoRepository,
		services.NewLogService,
		services.NewMetricsService,
		services.NewBoxModelService,
		services.NewPhotoService,
		services.NewExchangeService,
		services.NewJanitorService,
		handlers.NewBoxModelHandler,
		handlers.NewExchangeHandler,
		handlers.NewPhotoHandler,
		handlers.NewJanitorHandler,
	)
	return nil, nil
}
