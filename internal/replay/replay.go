// Package replay paces a finished simulation for step-by-step display.
// It only consumes recorded frames; the simulation itself never sleeps.
package replay

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"os-scheduler/internal/core"
)

// Frame is the simulation state observed after one tick.
type Frame struct {
	Clock     int               `json:"clock" yaml:"clock"`
	Running   string            `json:"running,omitempty" yaml:"running,omitempty"`
	Queue     []string          `json:"queue" yaml:"queue"`
	Remaining map[string]int    `json:"remaining" yaml:"remaining"`
	Completed []string          `json:"completed" yaml:"completed"`
	Segments  []core.RunSegment `json:"segments" yaml:"segments"`
}

// Play hands frames to fn one at a time, waiting interval between them.
// A zero interval replays without delay. It stops early when ctx is done
// or fn returns an error.
func Play(ctx context.Context, frames []Frame, interval time.Duration, fn func(Frame) error) error {
	if interval <= 0 {
		for _, f := range frames {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(f); err != nil {
				return err
			}
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for i, f := range frames {
		if err := fn(f); err != nil {
			return err
		}
		if i == len(frames)-1 {
			break
		}
		select {
		case <-ctx.Done():
			logrus.Debugf("replay stopped at clock %d", f.Clock)
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
