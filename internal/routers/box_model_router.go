package routers

import (
	"Coldbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupBoxModelRouter(app *fiber.App, server *cmd.Server) {
	boxModelHandler := server.BoxModelHandler
	app.Get("/box-models", boxModelHandler.ListBoxModels)
	app.Get("/box-models/:id", boxModelHandler.GetBoxModel)
	app.Get("/compliance/check", boxModelHandler.CheckCompliance)
}
