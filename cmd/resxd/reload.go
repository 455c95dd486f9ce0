package main

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// throttle keeps consecutive reloads at least every apart. A burst of change
// notifications, e.g. while a store is being seeded, then costs one reload
// per interval instead of one per notification. A non-positive interval
// disables throttling.
func throttle(reload func(context.Context) error, every time.Duration) func(context.Context) error {
	if every <= 0 {
		return reload
	}
	limiter := rate.NewLimiter(rate.Every(every), 1)
	return func(ctx context.Context) error {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		return reload(ctx)
	}
}
