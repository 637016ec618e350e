package handlers

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/internal/api/presenters"
	"FreshKeep-Backend/pkg/tracker"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		GetWeeklyReport(c *fiber.Ctx) error
		GetCurrentWeek(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
	}

	reportHandler struct {
		trackerService tracker.TrackerService
	}
)

func NewReportHandler(trackerService tracker.TrackerService) ReportHandler {
	return &reportHandler{trackerService: trackerService}
}

func (h *reportHandler) GetWeeklyReport(c *fiber.Ctx) error {
	weeks, err := strconv.Atoi(c.Query("weeks", "8"))
	if err != nil || weeks < 1 {
		weeks = 8
	}

	res := h.trackerService.GetWeeklyReport(weeks)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeeklyReport)
}

func (h *reportHandler) GetCurrentWeek(c *fiber.Ctx) error {
	bucket := h.trackerService.GetCurrentWeek()
	return presenters.SuccessResponse(c, bucket, fiber.StatusOK, domain.MessageSuccessGetWeeklyReport)
}

func (h *reportHandler) GetDashboard(c *fiber.Ctx) error {
	stats := h.trackerService.GetDashboard()
	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
