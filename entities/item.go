package entities

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StorageMode is where an item is filed. The three modes are fixed;
// ingestion normalizes the classifier's vocabulary into this enum.
type StorageMode string

const (
	StoragePantry  StorageMode = "pantry"
	StorageFridge  StorageMode = "fridge"
	StorageFreezer StorageMode = "freezer"
)

// StorageExpiry holds one expiry estimate per storage mode. All three
// fields are set at ingestion; a zero time means the estimate is missing.
type StorageExpiry struct {
	Pantry  time.Time `json:"pantry"`
	Fridge  time.Time `json:"fridge"`
	Freezer time.Time `json:"freezer"`
}

// ForMode returns the estimate for the given mode and whether it is set.
func (e StorageExpiry) ForMode(mode StorageMode) (time.Time, bool) {
	var t time.Time
	switch mode {
	case StoragePantry:
		t = e.Pantry
	case StorageFridge:
		t = e.Fridge
	case StorageFreezer:
		t = e.Freezer
	}
	return t, !t.IsZero()
}

// Shift moves every set estimate by d, keeping unset entries unset.
func (e StorageExpiry) Shift(d time.Duration) StorageExpiry {
	out := e
	if !out.Pantry.IsZero() {
		out.Pantry = out.Pantry.Add(d)
	}
	if !out.Fridge.IsZero() {
		out.Fridge = out.Fridge.Add(d)
	}
	if !out.Freezer.IsZero() {
		out.Freezer = out.Freezer.Add(d)
	}
	return out
}

// Item is one purchased unit-group from a receipt.
type Item struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Quantity        int           `json:"quantity"` // always >= 1
	PurchasedAt     time.Time     `json:"purchased_at"`
	DefaultStorage  StorageMode   `json:"default_storage"`
	SelectedStorage StorageMode   `json:"selected_storage"`
	ExpiryByStorage StorageExpiry `json:"expiry_by_storage"`

	// OverrideExpiry, when set, is authoritative over any storage estimate.
	OverrideExpiry *time.Time `json:"override_expiry,omitempty"`

	AmountPerUnit float64 `json:"amount_per_unit,omitempty"`
	Unit          string  `json:"unit,omitempty"`

	PricePerUnit *float64 `json:"price_per_unit,omitempty"`
	TotalPrice   *float64 `json:"total_price,omitempty"`

	// UnitPriceFallback is derived once at construction from
	// TotalPrice/Quantity when no explicit per-unit price exists, so later
	// quantity edits still yield a sane per-unit cost.
	UnitPriceFallback *float64 `json:"unit_price_fallback,omitempty"`

	IsUsed bool       `json:"is_used"`
	UsedAt *time.Time `json:"used_at,omitempty"` // non-nil iff IsUsed
}

// EffectiveTotalCost is the monetary value an item contributes to the
// savings/waste buckets: explicit per-unit price times quantity, else the
// construction-time fallback per-unit price times quantity, else the flat
// receipt total, else zero.
func (it Item) EffectiveTotalCost() float64 {
	qty := float64(it.Quantity)
	if it.PricePerUnit != nil {
		return *it.PricePerUnit * qty
	}
	if it.UnitPriceFallback != nil {
		return *it.UnitPriceFallback * qty
	}
	if it.TotalPrice != nil {
		return *it.TotalPrice
	}
	return 0
}

// CanonicalKey groups repeated purchases of "the same" item across
// receipts: lowercased name with whitespace collapsed.
func (it Item) CanonicalKey() string {
	return strings.Join(strings.Fields(strings.ToLower(it.Name)), " ")
}

// DisplayName includes the descriptive per-unit quantity when present.
func (it Item) DisplayName() string {
	if it.AmountPerUnit > 0 && it.Unit != "" {
		amount := strconv.FormatFloat(it.AmountPerUnit, 'f', -1, 64)
		return strings.TrimSpace(it.Name) + " (" + amount + " " + it.Unit + ")"
	}
	return it.Name
}
