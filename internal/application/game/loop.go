package game

import (
	"context"
	"time"

	"github.com/younwookim/pacman/internal/infrastructure/render"
)

// RunHeadless ticks and renders onto s until quit, maxTicks ticks (when
// positive) or ctx is done. A positive interval paces the ticks; zero runs
// them back to back.
func (c *Controller) RunHeadless(ctx context.Context, interval time.Duration, s render.Surface, maxTicks int) error {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 0; c.running && (maxTicks <= 0 || n < maxTicks); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Tick(); err != nil {
			return err
		}
		c.Render(s)

		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
	return nil
}
