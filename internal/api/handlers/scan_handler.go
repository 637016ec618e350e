package handlers

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/internal/api/presenters"
	"FreshKeep-Backend/pkg/tracker"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		ScanReceipt(c *fiber.Ctx) error
	}

	scanHandler struct {
		trackerService tracker.TrackerService
		validator      *validator.Validate
	}
)

func NewScanHandler(trackerService tracker.TrackerService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		trackerService: trackerService,
		validator:      validator,
	}
}

func (h *scanHandler) ScanReceipt(c *fiber.Ctx) error {
	req := new(domain.ScanReceiptRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}

	res, err := h.trackerService.ScanReceipt(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedScanReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanReceipt)
}
