package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/akravets/dbrain-bot/internal/domain"
)

// progressRunner executes a slow processor call in the background while
// emitting heartbeat callbacks on a fixed cadence. It imposes no upper
// bound on total duration; cancellation, if any, comes in through ctx.
type progressRunner struct {
	interval time.Duration
}

// run launches call in its own goroutine and invokes onHeartbeat with the
// elapsed time every interval until the call resolves. Heartbeat failures
// are swallowed: a rejected status edit must never abort the underlying
// call. A terminal result racing a tick always wins - the done channel is
// drained before each heartbeat attempt, so a heartbeat can never overwrite
// the final update.
//
// Failures inside call are the callee's to translate; run itself returns
// whatever Report the call produced, after however many heartbeats fired.
func (p progressRunner) run(ctx context.Context, call func(context.Context) domain.Report, onHeartbeat func(elapsed time.Duration) error) domain.Report {
	done := make(chan domain.Report, 1)
	go func() {
		done <- call(ctx)
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	started := time.Now()
	for {
		select {
		case report := <-done:
			return report
		case <-ticker.C:
			// Completion is checked before the heartbeat, never after.
			select {
			case report := <-done:
				return report
			default:
			}
			if err := onHeartbeat(time.Since(started)); err != nil {
				slog.Debug("heartbeat update rejected", "error", err)
			}
		}
	}
}
