package cmd

import (
	"Coldbox/internal/config"
	"Coldbox/internal/handlers"
	"Coldbox/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Configuration   *config.Configuration
	DB              *gorm.DB
	BoxModelService services.BoxModelService
	BoxModelHandler *handlers.BoxModelHandler
	ExchangeService services.ExchangeService
	ExchangeHandler *handlers.ExchangeHandler
	PhotoService    services.PhotoService
	PhotoHandler    *handlers.PhotoHandler
	LogService      services.LogService
	MetricsService  *services.MetricsService
	JanitorService  *services.Janitor
	JanitorHandler  *handlers.JanitorHandler
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	boxModelService services.BoxModelService,
	boxModelHandler *handlers.BoxModelHandler,
	exchangeService services.ExchangeService,
	exchangeHandler *handlers.ExchangeHandler,
	photoService services.PhotoService,
	photoHandler *handlers.PhotoHandler,
	logService services.LogService,
	metricsService *services.MetricsService,
	janitorService *services.Janitor,
	janitorHandler *handlers.JanitorHandler,
) *Server {
	return &Server{
		Configuration:   configuration,
		DB:              db,
		BoxModelService: boxModelService,
		BoxModelHandler: boxModelHandler,
		ExchangeService: exchangeService,
		ExchangeHandler: exchangeHandler,
		PhotoService:    photoService,
		PhotoHandler:    photoHandler,
		LogService:      logService,
		MetricsService:  metricsService,
		JanitorService:  janitorService,
		JanitorHandler:  janitorHandler,
	}
}
