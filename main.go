package main

import (
	"FreshKeep-Backend/cmd/config"
	"FreshKeep-Backend/internal/rollover"
	"FreshKeep-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	trackerService := config.NewTrackerService()
	app, err := config.NewApp(trackerService)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	stopRollover := rollover.StartRolloverRoutine(trackerService)
	defer stopRollover()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
