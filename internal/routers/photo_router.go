package routers

import (
	"Coldbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupPhotoRouter(app *fiber.App, server *cmd.Server) {
	app.Get("/photos/*", server.PhotoHandler.DownloadPhoto)
}
