package expiry

import (
	"FreshKeep-Backend/entities"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fridgeItem(expiresAt time.Time) entities.Item {
	return entities.Item{
		ID:              uuid.New(),
		Name:            "Milk",
		Quantity:        1,
		DefaultStorage:  entities.StorageFridge,
		SelectedStorage: entities.StorageFridge,
		ExpiryByStorage: entities.StorageExpiry{Fridge: expiresAt},
	}
}

func TestEffectiveExpiry(t *testing.T) {
	fridge := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	pantry := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	override := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		item     entities.Item
		expected time.Time
		ok       bool
	}{
		{
			name: "override wins over all storage estimates",
			item: entities.Item{
				SelectedStorage: entities.StorageFridge,
				DefaultStorage:  entities.StorageFridge,
				ExpiryByStorage: entities.StorageExpiry{Fridge: fridge, Pantry: pantry},
				OverrideExpiry:  &override,
			},
			expected: override,
			ok:       true,
		},
		{
			name: "selected storage estimate when no override",
			item: entities.Item{
				SelectedStorage: entities.StorageFridge,
				DefaultStorage:  entities.StoragePantry,
				ExpiryByStorage: entities.StorageExpiry{Fridge: fridge, Pantry: pantry},
			},
			expected: fridge,
			ok:       true,
		},
		{
			name: "default storage estimate when selected has none",
			item: entities.Item{
				SelectedStorage: entities.StorageFreezer,
				DefaultStorage:  entities.StoragePantry,
				ExpiryByStorage: entities.StorageExpiry{Pantry: pantry},
			},
			expected: pantry,
			ok:       true,
		},
		{
			name: "nothing resolvable",
			item: entities.Item{
				SelectedStorage: entities.StorageFridge,
				DefaultStorage:  entities.StorageFridge,
			},
			ok: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EffectiveExpiry(tt.item)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(got))
			}
		})
	}
}

func TestEffectiveExpiryDayLocal(t *testing.T) {
	// A UTC-midnight instant must keep its recorded calendar day even for
	// a viewer eight hours behind UTC.
	westCoast := time.FixedZone("UTC-8", -8*3600)
	item := fridgeItem(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	day, ok := EffectiveExpiryDayLocal(item, westCoast)
	require.True(t, ok)
	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.January, day.Month())
	assert.Equal(t, 10, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, westCoast, day.Location())
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name     string
		day      time.Time
		expected time.Time
	}{
		{
			name:     "friday maps back to monday",
			day:      time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monday maps to itself",
			day:      time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday belongs to the preceding monday",
			day:      time.Date(2025, 1, 12, 23, 59, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(MondayOf(tt.day)))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		item     entities.Item
		now      time.Time
		expected Urgency
	}{
		{
			name:     "yesterday is expired",
			item:     fridgeItem(time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)),
			now:      time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
			expected: UrgencyExpired,
		},
		{
			name:     "expiring today late evening is never expired",
			item:     fridgeItem(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)),
			now:      time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC),
			expected: UrgencySoon,
		},
		{
			name:     "exactly 48h before end of expiry day is soon",
			item:     fridgeItem(time.Date(2025, 1, 12, 12, 0, 0, 0, time.UTC)),
			now:      time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			expected: UrgencySoon,
		},
		{
			name:     "just over 48h before end of expiry day is fresh",
			item:     fridgeItem(time.Date(2025, 1, 12, 12, 0, 0, 0, time.UTC)),
			now:      time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC),
			expected: UrgencyFresh,
		},
		{
			name:     "far future is fresh",
			item:     fridgeItem(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
			now:      time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
			expected: UrgencyFresh,
		},
		{
			name: "unresolvable expiry is fresh",
			item: entities.Item{
				SelectedStorage: entities.StorageFridge,
				DefaultStorage:  entities.StorageFridge,
			},
			now:      time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
			expected: UrgencyFresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.item, tt.now))
		})
	}
}

func TestClassifySameDayLateEveningNeverExpired(t *testing.T) {
	// Item with a noon-UTC estimate viewed at 23:00 local on the same
	// calendar day: soon (or fresh), never expired.
	loc := time.FixedZone("UTC+1", 3600)
	item := fridgeItem(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))
	now := time.Date(2025, 1, 10, 23, 0, 0, 0, loc)

	got := Classify(item, now)
	assert.NotEqual(t, UrgencyExpired, got)
	assert.Equal(t, UrgencySoon, got)
}
