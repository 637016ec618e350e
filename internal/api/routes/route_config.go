package routes

import (
	"FreshKeep-Backend/internal/api/handlers"
	"FreshKeep-Backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	ItemHandler   handlers.ItemHandler
	ReportHandler handlers.ReportHandler
	ScanHandler   handlers.ScanHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Items()
	c.Reports()
	c.GuestRoute()
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items")
	{
		items.Get("", c.ItemHandler.GetItems)
		items.Post("", c.ItemHandler.AddItem)
		items.Patch("/:id", c.ItemHandler.UpdateItem)
		items.Delete("/:id", c.ItemHandler.DeleteItem)

		// Destructive batch + undo operations
		items.Post("/batch-delete", c.ItemHandler.BatchDeleteItems)
		items.Post("/undo", c.ItemHandler.Undo)
		items.Post("/:id/used", c.ItemHandler.ToggleUsed)

		// Pending-review bulk edit
		items.Post("/purchase-date", c.ItemHandler.ShiftPurchaseDates)
	}

	c.App.Post("/api/v1/scans", c.ScanHandler.ScanReceipt)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports")
	{
		reports.Get("/weekly", c.ReportHandler.GetWeeklyReport)
		reports.Get("/current-week", c.ReportHandler.GetCurrentWeek)
	}
	c.App.Get("/api/v1/dashboard", c.ReportHandler.GetDashboard)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
