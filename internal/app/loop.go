// internal/app/loop.go
package app

import (
	"context"
	"time"
)

// Loop updates g every interval until ctx is done and hands each new
// snapshot to onFrame. Hosts without their own frame loop use it.
func Loop(ctx context.Context, g *Game, interval time.Duration, onFrame func(State)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.Update()
			if onFrame != nil {
				onFrame(g.Snapshot())
			}
		}
	}
}
