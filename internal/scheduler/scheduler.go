// Package scheduler runs periodic maintenance tasks.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"companies-engine/internal/logging"
)

type Task func(ctx context.Context) error

// Every runs task once right away and then on every tick until ctx is done.
// Task errors are logged and never stop the loop. A non-positive interval
// disables the task.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	if interval <= 0 {
		return
	}
	log := logging.FromContext(ctx).With(zap.String("task", name))

	run := func() {
		start := time.Now()
		if err := task(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error("scheduled task failed", zap.Error(err))
			return
		}
		log.Debug("scheduled task done", zap.Duration("took", time.Since(start)))
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
