package report

import (
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/expiry"
	"time"
)

// WeeklyBuckets partitions items into Monday-start weeks by their
// effective expiry day and sums monetary value per category. The returned
// slice holds weeksBack consecutive weeks ending at now's own week, oldest
// first; weeks with no contributing items appear with all-zero sums so
// chart axes stay stable. Items whose expiry week falls outside the range
// are dropped, not clamped; items with no resolvable expiry are skipped.
func WeeklyBuckets(items []entities.Item, weeksBack int, now time.Time) []entities.WeekBucket {
	if weeksBack <= 0 {
		return nil
	}

	currentWeek := expiry.MondayOf(now)
	buckets := make([]entities.WeekBucket, weeksBack)
	index := make(map[string]int, weeksBack)
	for i := 0; i < weeksBack; i++ {
		start := addWeeks(currentWeek, i-(weeksBack-1))
		buckets[i] = entities.WeekBucket{WeekStart: start}
		index[dayKey(start)] = i
	}

	today := expiry.StartOfDay(now)
	for _, it := range items {
		day, ok := expiry.EffectiveExpiryDayLocal(it, now.Location())
		if !ok {
			continue
		}
		i, ok := index[dayKey(expiry.MondayOf(day))]
		if !ok {
			continue
		}

		cost := it.EffectiveTotalCost()
		switch {
		case it.IsUsed:
			// Being used is terminal: always saved, keyed to the expiry
			// week rather than the used-at week.
			buckets[i].Saved += cost
		case day.Before(today):
			buckets[i].Wasted += cost
		default:
			buckets[i].Potential += cost
		}
	}
	return buckets
}

// CurrentWeekBucket is the single bucket for now's own week, for the
// "this week" summary tile. It must agree numerically with the last
// bucket of any longer WeeklyBuckets query over the same items.
func CurrentWeekBucket(items []entities.Item, now time.Time) entities.WeekBucket {
	return WeeklyBuckets(items, 1, now)[0]
}

// addWeeks moves by whole weeks and re-anchors at midnight so a DST
// transition inside the range cannot skew the anchor.
func addWeeks(weekStart time.Time, n int) time.Time {
	t := weekStart.AddDate(0, 0, 7*n)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
