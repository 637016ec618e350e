package entities

import (
	"time"
)

// WeekBucket aggregates monetary value for one Monday-start week. It is
// derived on demand from the item ledger and never stored.
type WeekBucket struct {
	WeekStart time.Time `json:"week_start"`
	Potential float64   `json:"potential"`
	Wasted    float64   `json:"wasted"`
	Saved     float64   `json:"saved"`
}
