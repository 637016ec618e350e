package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveTotalCost(t *testing.T) {
	price := 3.0
	fallback := 2.5
	total := 10.0

	tests := []struct {
		name     string
		item     Item
		expected float64
	}{
		{
			name:     "explicit per-unit price scales with quantity",
			item:     Item{Quantity: 4, PricePerUnit: &price, TotalPrice: &total},
			expected: 12.0,
		},
		{
			name:     "fallback per-unit price scales with quantity",
			item:     Item{Quantity: 3, UnitPriceFallback: &fallback, TotalPrice: &total},
			expected: 7.5,
		},
		{
			name:     "flat total ignores quantity",
			item:     Item{Quantity: 7, TotalPrice: &total},
			expected: 10.0,
		},
		{
			name:     "no price information is zero",
			item:     Item{Quantity: 2},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.item.EffectiveTotalCost(), 1e-9)
		})
	}
}

func TestEffectiveTotalCostScalesProportionallyOnQuantityEdit(t *testing.T) {
	fallback := 2.5
	item := Item{Quantity: 2, UnitPriceFallback: &fallback}
	before := item.EffectiveTotalCost()

	item.Quantity = 4
	assert.InDelta(t, before*2, item.EffectiveTotalCost(), 1e-9)
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Whole  Milk", "whole milk"},
		{"  whole milk  ", "whole milk"},
		{"WHOLE\tMILK", "whole milk"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Item{Name: tt.name}.CanonicalKey())
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Milk (16 oz)", Item{Name: "Milk", AmountPerUnit: 16, Unit: "oz"}.DisplayName())
	assert.Equal(t, "Milk (0.5 l)", Item{Name: "Milk", AmountPerUnit: 0.5, Unit: "l"}.DisplayName())
	assert.Equal(t, "Milk", Item{Name: "Milk"}.DisplayName())
}

func TestStorageExpiryForMode(t *testing.T) {
	fridge := time.Date(2025, 1, 12, 12, 0, 0, 0, time.UTC)
	e := StorageExpiry{Fridge: fridge}

	got, ok := e.ForMode(StorageFridge)
	require.True(t, ok)
	assert.True(t, fridge.Equal(got))

	_, ok = e.ForMode(StoragePantry)
	assert.False(t, ok)
}

func TestStorageExpiryShiftKeepsUnsetEntriesUnset(t *testing.T) {
	e := StorageExpiry{Fridge: time.Date(2025, 1, 12, 12, 0, 0, 0, time.UTC)}
	shifted := e.Shift(48 * time.Hour)

	assert.True(t, shifted.Fridge.Equal(time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC)))
	assert.True(t, shifted.Pantry.IsZero())
	assert.True(t, shifted.Freezer.IsZero())
}
