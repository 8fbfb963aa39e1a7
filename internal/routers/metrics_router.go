package routers

import (
	"Coldbox/cmd"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupMetricsRouter(app *fiber.App, server *cmd.Server) {
	handler := promhttp.HandlerFor(server.MetricsService.Registry, promhttp.HandlerOpts{})
	app.Get("/metrics", adaptor.HTTPHandler(handler))
}
