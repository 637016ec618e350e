package expiry

import (
	"FreshKeep-Backend/entities"
	"time"
)

// Urgency is the display state derived from effective expiry and "now".
type Urgency string

const (
	UrgencyExpired Urgency = "expired"
	UrgencySoon    Urgency = "soon"
	UrgencyFresh   Urgency = "fresh"
)

// soonWindow is the fixed lookahead before the end of the expiry day.
const soonWindow = 48 * time.Hour

// Classify maps an item and the current instant to an urgency state.
// Granularity is the calendar day: an item expiring today is never
// expired, no matter the clock. Items with no resolvable expiry are
// fresh so a missing estimate cannot take down the whole dashboard.
func Classify(it entities.Item, now time.Time) Urgency {
	day, ok := EffectiveExpiryDayLocal(it, now.Location())
	if !ok {
		return UrgencyFresh
	}
	today := StartOfDay(now)
	if day.Before(today) {
		return UrgencyExpired
	}
	endOfDay := day.AddDate(0, 0, 1)
	if endOfDay.Sub(now) <= soonWindow {
		return UrgencySoon
	}
	return UrgencyFresh
}
