package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Frames uint64 // stop after N frames (0 = run until ctx is done)
}

// RunHeadless drives frames from a ticker without presenting them anywhere.
// It returns nil once the frame budget is spent and ctx.Err() on cancellation.
func RunHeadless(ctx context.Context, host HostConfig, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(host)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			h.frames.Flush()
			return ctx.Err()
		case <-t.C:
			if err := h.frame(step); err != nil {
				return err
			}
			n++
			if cfg.Frames > 0 && n >= cfg.Frames {
				h.log.Debug().Uint64("frames", n).Msg("frame budget spent")
				return nil
			}
		}
	}
}
