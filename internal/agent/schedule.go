package agent

import (
	"context"
	"fmt"
	"os"
	"time"
)

// nextTick computes when the next cycle should run, from either the fixed
// interval or the daily posting time.
func (a *Agent) nextTick(now time.Time) time.Time {
	if a.cfg.Interval > 0 {
		return now.Add(a.cfg.Interval)
	}
	return nextDailyTick(now, a.cfg.DailyHour, a.cfg.DailyMinute)
}

// nextDailyTick returns the next occurrence of hour:min strictly after now,
// in now's location.
func nextDailyTick(now time.Time, hour, min int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// wait blocks until next, rendering the countdown once per second when
// enabled. Returns the context error on cancellation.
func (a *Agent) wait(ctx context.Context, next time.Time) error {
	total := time.Until(next)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.endCountdown()
			return ctx.Err()
		case now := <-ticker.C:
			remaining := next.Sub(now)
			if remaining <= 0 {
				a.endCountdown()
				return nil
			}
			if a.cfg.Progress {
				fmt.Fprint(os.Stderr, "\r"+renderCountdown(remaining, total))
			}
		}
	}
}

func (a *Agent) endCountdown() {
	if a.cfg.Progress {
		fmt.Fprintln(os.Stderr)
	}
}
