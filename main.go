package main

import (
	"Coldbox/database"
	"Coldbox/internal/server"
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	coldbox, err := InitializeServer()
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	defer database.CloseDatabase(coldbox.DB)

	if err := coldbox.BoxModelService.SeedCatalog(context.Background()); err != nil {
		log.Fatalf("Failed to seed box models: %v", err)
	}
	if err := coldbox.JanitorService.StartCleanCycle(); err != nil {
		log.Fatalf("Failed to schedule janitor: %v", err)
	}
	defer coldbox.JanitorService.StopClean()

	app := server.NewApp(coldbox)
	err = app.Listen(fmt.Sprintf(":%d", coldbox.Configuration.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
