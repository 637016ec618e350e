package rollover

import (
	"FreshKeep-Backend/pkg/tracker"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// StartRolloverRoutine re-invokes the read-side recompute at every local
// midnight so urgency states and week buckets roll over without a client
// restart. All derived state is computed fresh on read, so the recompute
// only has to happen once to move anything that crossed the day boundary;
// the result is logged as the daily summary. Returns a stop function.
func StartRolloverRoutine(trackerService tracker.TrackerService) func() {
	stop := make(chan struct{})

	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
			timer := time.NewTimer(next.Sub(now))

			select {
			case <-stop:
				timer.Stop()
				return
			case <-timer.C:
			}

			stats := trackerService.GetDashboard()
			log.Infof("midnight rollover: %d items, %d expired, %d due soon",
				stats.TotalItems, stats.ExpiredItems, stats.SoonItems)
		}
	}()

	return func() { close(stop) }
}
