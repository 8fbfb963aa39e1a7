package routers

import (
	"Coldbox/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupExchangeRouter(app *fiber.App, server *cmd.Server) {
	exchangeHandler := server.ExchangeHandler
	app.Get("/exchanges", exchangeHandler.ListExchanges)
	app.Post("/exchanges", exchangeHandler.CreateExchange)
	app.Get("/exchanges/:id", exchangeHandler.GetExchange)
	app.Patch("/exchanges/:id", exchangeHandler.UpdateOperator)
}
