package routers

import (
	"Coldbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupExchangeRouter(app, server)
	SetupBoxModelRouter(app, server)
	SetupPhotoRouter(app, server)
	SetupJanitorRouter(app, server)
	SetupMetricsRouter(app, server)
}
