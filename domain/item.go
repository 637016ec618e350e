package domain

import (
	"errors"
	"time"

	"FreshKeep-Backend/entities"
)

var (
	MessageSuccessAddItem           = "item added successfully"
	MessageSuccessUpdateItem        = "item updated successfully"
	MessageSuccessDeleteItem        = "item deleted successfully"
	MessageSuccessGetItems          = "items retrieved successfully"
	MessageSuccessToggleUsed        = "item used state toggled"
	MessageSuccessUndo              = "last action undone"
	MessageSuccessShiftPurchaseDate = "purchase dates updated"
	MessageSuccessScanReceipt       = "receipt scanned successfully"
	MessageSuccessGetWeeklyReport   = "weekly report retrieved successfully"
	MessageSuccessGetDashboard      = "dashboard retrieved successfully"

	MessageFailedAddItem           = "failed to add item"
	MessageFailedUpdateItem        = "failed to update item"
	MessageFailedDeleteItem        = "failed to delete item"
	MessageFailedGetItems          = "failed to retrieve items"
	MessageFailedToggleUsed        = "failed to toggle item used state"
	MessageFailedUndo              = "nothing to undo"
	MessageFailedShiftPurchaseDate = "failed to update purchase dates"
	MessageFailedScanReceipt       = "failed to scan receipt"
	MessageFailedGetWeeklyReport   = "failed to retrieve weekly report"
	MessageFailedGetDashboard      = "failed to retrieve dashboard"

	ErrItemNotFound          = errors.New("item not found")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidPurchaseDate   = errors.New("invalid purchase date")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInvalidStorageMode    = errors.New("invalid storage mode")
	ErrMissingExpiryEstimate = errors.New("missing expiry estimate for storage mode")
	ErrNothingToUndo         = errors.New("no undoable action pending")
	ErrClassifierUnavailable = errors.New("classification service unavailable")
)

type (
	AddItemRequest struct {
		Name          string   `json:"name" validate:"required"`
		Quantity      int      `json:"quantity" validate:"required,min=1"`
		Storage       string   `json:"storage" validate:"required,oneof=pantry fridge freezer"`
		ExpiryDate    string   `json:"expiry_date" validate:"required"`
		PurchaseDate  string   `json:"purchase_date" validate:"omitempty"`
		AmountPerUnit float64  `json:"amount_per_unit" validate:"omitempty,gt=0"`
		Unit          string   `json:"unit" validate:"omitempty"`
		PricePerUnit  *float64 `json:"price_per_unit" validate:"omitempty,gte=0"`
		TotalPrice    *float64 `json:"total_price" validate:"omitempty,gte=0"`
	}

	UpdateItemRequest struct {
		Name           string  `json:"name" validate:"omitempty"`
		Quantity       int     `json:"quantity" validate:"omitempty,min=1"`
		Storage        string  `json:"storage" validate:"omitempty,oneof=pantry fridge freezer"`
		OverrideExpiry *string `json:"override_expiry" validate:"omitempty"`
		ClearOverride  bool    `json:"clear_override"`
	}

	BatchDeleteRequest struct {
		IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
	}

	ShiftPurchaseDateRequest struct {
		IDs          []string `json:"ids" validate:"required,min=1,dive,uuid"`
		PurchaseDate string   `json:"purchase_date" validate:"required"`
	}

	ScanReceiptRequest struct {
		Image       string `json:"image" validate:"required"`
		Timezone    string `json:"timezone" validate:"omitempty"`
		PartialScan bool   `json:"partial_scan"`
		ScanGroupID string `json:"scan_group_id" validate:"omitempty,uuid"`
	}

	ItemResponse struct {
		ID              string                 `json:"id"`
		Name            string                 `json:"name"`
		DisplayName     string                 `json:"display_name"`
		Quantity        int                    `json:"quantity"`
		PurchasedAt     time.Time              `json:"purchased_at"`
		DefaultStorage  entities.StorageMode   `json:"default_storage"`
		SelectedStorage entities.StorageMode   `json:"selected_storage"`
		ExpiryByStorage entities.StorageExpiry `json:"expiry_by_storage"`
		OverrideExpiry  *time.Time             `json:"override_expiry,omitempty"`
		EffectiveExpiry *time.Time             `json:"effective_expiry,omitempty"`
		Urgency         string                 `json:"urgency"`
		IsUsed          bool                   `json:"is_used"`
		UsedAt          *time.Time             `json:"used_at,omitempty"`
		TotalCost       float64                `json:"total_cost"`
	}

	UndoResponse struct {
		Kind      string    `json:"kind"`
		Count     int       `json:"count"`
		ExpiresAt time.Time `json:"expires_at"`
	}

	ScanReceiptResponse struct {
		ScanGroupID  string         `json:"scan_group_id"`
		Items        []ItemResponse `json:"items"`
		DroppedItems int            `json:"dropped_items"`
	}

	WeeklyReportResponse struct {
		Weeks   int                   `json:"weeks"`
		Buckets []entities.WeekBucket `json:"buckets"`
	}
)
