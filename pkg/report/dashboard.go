package report

import (
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/expiry"
	"time"
)

// DashboardStats backs the summary screen: urgency counts over unused
// items, this week's bucket, and name groups bought more than once.
type DashboardStats struct {
	TotalItems   int `json:"total_items"`
	ExpiredItems int `json:"expired_items"`
	SoonItems    int `json:"soon_items"`
	FreshItems   int `json:"fresh_items"`
	UsedItems    int `json:"used_items"`

	ThisWeek entities.WeekBucket `json:"this_week"`

	// RepeatPurchases counts items sharing a canonical name key, listed
	// only when bought more than once.
	RepeatPurchases map[string]int `json:"repeat_purchases,omitempty"`
}

func ComputeDashboardStats(items []entities.Item, now time.Time) DashboardStats {
	stats := DashboardStats{TotalItems: len(items)}

	occurrences := make(map[string]int)
	for _, it := range items {
		if key := it.CanonicalKey(); key != "" {
			occurrences[key]++
		}
		if it.IsUsed {
			stats.UsedItems++
			continue
		}
		switch expiry.Classify(it, now) {
		case expiry.UrgencyExpired:
			stats.ExpiredItems++
		case expiry.UrgencySoon:
			stats.SoonItems++
		default:
			stats.FreshItems++
		}
	}

	for key, n := range occurrences {
		if n > 1 {
			if stats.RepeatPurchases == nil {
				stats.RepeatPurchases = make(map[string]int)
			}
			stats.RepeatPurchases[key] = n
		}
	}

	stats.ThisWeek = CurrentWeekBucket(items, now)
	return stats
}
