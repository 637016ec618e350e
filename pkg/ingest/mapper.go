package ingest

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/entities"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MapItems converts a classifier response into item records. Malformed
// items (unparseable date, missing expiry entry) are dropped individually
// so one bad line cannot sink the batch; the drop count is reported for
// logging.
func MapItems(resp ClassifierResponse) ([]entities.Item, int) {
	var out []entities.Item
	dropped := 0
	for _, ci := range resp.Items {
		it, err := ToItemRecord(ci)
		if err != nil {
			dropped++
			continue
		}
		out = append(out, it)
	}
	return out, dropped
}

// ToItemRecord maps one classifier item into the internal record shape,
// assigning a fresh id.
func ToItemRecord(ci ClassifierItem) (entities.Item, error) {
	pantryRaw := firstNonEmpty(ci.Expiry.Pantry, ci.Expiry.Outside)
	fridgeRaw := firstNonEmpty(ci.Expiry.Refrigerator, ci.Expiry.Fridge)
	freezerRaw := ci.Expiry.Freezer
	if pantryRaw == "" || fridgeRaw == "" || freezerRaw == "" {
		return entities.Item{}, domain.ErrMissingExpiryEstimate
	}

	pantry, err := ParseInstant(pantryRaw)
	if err != nil {
		return entities.Item{}, domain.ErrInvalidExpiryDate
	}
	fridge, err := ParseInstant(fridgeRaw)
	if err != nil {
		return entities.Item{}, domain.ErrInvalidExpiryDate
	}
	freezer, err := ParseInstant(freezerRaw)
	if err != nil {
		return entities.Item{}, domain.ErrInvalidExpiryDate
	}

	purchasedAt, err := ParseInstant(ci.PurchaseDate)
	if err != nil {
		return entities.Item{}, domain.ErrInvalidPurchaseDate
	}

	quantity := 1
	if n, ok := coerceFloat(ci.Quantity.Count); ok && int(n) > 1 {
		quantity = int(n)
	}

	storage := NormalizeStorage(firstNonEmpty(ci.RecommendedStorage, ci.DefaultStorage))

	item := entities.Item{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(ci.Name),
		Quantity:        quantity,
		PurchasedAt:     purchasedAt,
		DefaultStorage:  storage,
		SelectedStorage: storage,
		ExpiryByStorage: entities.StorageExpiry{
			Pantry:  pantry,
			Fridge:  fridge,
			Freezer: freezer,
		},
		Unit: ci.Quantity.Unit,
	}

	if amount, ok := coerceFloat(ci.Quantity.AmountPerUnit); ok {
		item.AmountPerUnit = amount
	}
	if price, ok := coerceFloat(ci.PricePerUnit); ok {
		item.PricePerUnit = &price
	}
	if total, ok := coerceFloat(ci.TotalPrice); ok {
		item.TotalPrice = &total
	}
	if item.PricePerUnit == nil && item.TotalPrice != nil {
		fallback := *item.TotalPrice / float64(item.Quantity)
		item.UnitPriceFallback = &fallback
	}

	return item, nil
}

// ParseInstant normalizes the classifier's heterogeneous dates. A bare
// YYYY-MM-DD anchors at 12:00 UTC so the first parse cannot shift the
// calendar day for any viewer timezone; full ISO-8601 instants are taken
// as-is, with or without fractional seconds.
func ParseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(time.RFC3339Nano, value)
}

// NormalizeStorage folds both classifier vocabularies into the internal
// enum. Unrecognized values default to fridge: refrigeration is the safe
// assumption for an unknown perishable.
func NormalizeStorage(value string) entities.StorageMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pantry", "outside":
		return entities.StoragePantry
	case "freezer":
		return entities.StorageFreezer
	case "refrigerator", "fridge":
		return entities.StorageFridge
	default:
		return entities.StorageFridge
	}
}

// coerceFloat accepts a JSON number or a numeric string; anything else is
// treated as absent.
func coerceFloat(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
