package expiry

import (
	"FreshKeep-Backend/entities"
	"time"
)

// EffectiveExpiry resolves the single authoritative expiry instant for an
// item: user override, else the estimate for the selected storage mode,
// else the estimate for the classifier's default mode. The second return
// is false when none of the three is available; callers must treat that
// as "infinitely fresh" rather than an error.
func EffectiveExpiry(it entities.Item) (time.Time, bool) {
	if it.OverrideExpiry != nil {
		return *it.OverrideExpiry, true
	}
	if t, ok := it.ExpiryByStorage.ForMode(it.SelectedStorage); ok {
		return t, true
	}
	if t, ok := it.ExpiryByStorage.ForMode(it.DefaultStorage); ok {
		return t, true
	}
	return time.Time{}, false
}

// EffectiveExpiryDayLocal maps the effective expiry onto a calendar day in
// loc. The stored instant's own Y-M-D components are authoritative: a
// midnight stored in UTC must not slide to the previous or next day for a
// viewer in another timezone. The date is re-anchored at local noon before
// truncating to local midnight so DST transitions cannot move the day.
func EffectiveExpiryDayLocal(it entities.Item, loc *time.Location) (time.Time, bool) {
	inst, ok := EffectiveExpiry(it)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := inst.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, loc)
	return time.Date(noon.Year(), noon.Month(), noon.Day(), 0, 0, 0, 0, loc), true
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOf returns the Monday-start of t's ISO week, at local midnight.
// Weeks start Monday regardless of locale.
func MondayOf(t time.Time) time.Time {
	day := StartOfDay(t)
	back := (int(day.Weekday()) + 6) % 7
	day = day.AddDate(0, 0, -back)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
