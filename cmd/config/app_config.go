package config

import (
	"FreshKeep-Backend/internal/api/handlers"
	"FreshKeep-Backend/internal/api/routes"
	"FreshKeep-Backend/internal/middleware"
	"FreshKeep-Backend/internal/utils"
	"FreshKeep-Backend/pkg/ledger"
	"FreshKeep-Backend/pkg/scanner"
	"FreshKeep-Backend/pkg/tracker"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(trackerService tracker.TrackerService) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Handler
	itemHandler := handlers.NewItemHandler(trackerService, validator)
	reportHandler := handlers.NewReportHandler(trackerService)
	scanHandler := handlers.NewScanHandler(trackerService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		ItemHandler:   itemHandler,
		ReportHandler: reportHandler,
		ScanHandler:   scanHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// NewTrackerService builds the service graph without the fiber app, for
// the rollover routine and tests.
func NewTrackerService() tracker.TrackerService {
	store := ledger.NewStoreWithWindow(undoWindow())
	classifier := scanner.NewScanner(utils.GetConfig("CLASSIFIER_URL"), classifierTimeout())
	return tracker.NewTrackerService(store, classifier)
}

func undoWindow() time.Duration {
	if raw := utils.GetConfig("UNDO_WINDOW_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return ledger.DefaultUndoWindow
}

func classifierTimeout() time.Duration {
	if raw := utils.GetConfig("CLASSIFIER_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
	}
	return 60 * time.Second
}
