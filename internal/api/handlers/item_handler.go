package handlers

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/internal/api/presenters"
	"FreshKeep-Backend/pkg/tracker"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ItemHandler interface {
		AddItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		BatchDeleteItems(c *fiber.Ctx) error
		ToggleUsed(c *fiber.Ctx) error
		Undo(c *fiber.Ctx) error
		ShiftPurchaseDates(c *fiber.Ctx) error
	}

	itemHandler struct {
		trackerService tracker.TrackerService
		validator      *validator.Validate
	}
)

func NewItemHandler(trackerService tracker.TrackerService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		trackerService: trackerService,
		validator:      validator,
	}
}

func (h *itemHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.trackerService.AddItem(*req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *itemHandler) GetItems(c *fiber.Ctx) error {
	sortKey := c.Query("sort", "expiry")
	order := c.Query("order", "asc")
	storage := c.Query("storage", "all")
	used := c.Query("used", "all")

	items := h.trackerService.GetItems(sortKey, order, storage, used)

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	if err := h.trackerService.UpdateItem(itemID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	undo, removed, err := h.trackerService.DeleteItem(itemID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	// A vanished id is not an error; the record may have been deleted
	// concurrently and the outcome is the same.
	res := fiber.Map{"removed": removed}
	if removed {
		res["undo"] = undo
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

func (h *itemHandler) BatchDeleteItems(c *fiber.Ctx) error {
	req := new(domain.BatchDeleteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	undo, removed, err := h.trackerService.DeleteItems(*req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	res := fiber.Map{"removed": removed}
	if removed {
		res["undo"] = undo
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

func (h *itemHandler) ToggleUsed(c *fiber.Ctx) error {
	itemID := c.Params("id")

	undo, toggled, err := h.trackerService.ToggleUsed(itemID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleUsed, err)
	}

	res := fiber.Map{"toggled": toggled}
	if toggled {
		res["undo"] = undo
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleUsed)
}

func (h *itemHandler) Undo(c *fiber.Ctx) error {
	if !h.trackerService.Undo() {
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUndo, domain.ErrNothingToUndo)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUndo)
}

func (h *itemHandler) ShiftPurchaseDates(c *fiber.Ctx) error {
	req := new(domain.ShiftPurchaseDateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShiftPurchaseDate, err)
	}

	shifted, err := h.trackerService.ShiftPurchaseDates(*req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShiftPurchaseDate, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"shifted": shifted}, fiber.StatusOK, domain.MessageSuccessShiftPurchaseDate)
}
