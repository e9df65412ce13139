package hal

import (
	"time"

	"github.com/rs/zerolog"
)

// HostConfig describes the host-side devices.
type HostConfig struct {
	Width  int
	Height int
	Logger zerolog.Logger

	// FixedStep, when non-zero, replaces the wall clock with a virtual clock
	// starting at 0 that advances by FixedStep per presented frame.
	FixedStep time.Duration
}

type hostHAL struct {
	log    zerolog.Logger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	clock  *hostClock
	frames *FrameQueue
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	return &hostHAL{
		log:    cfg.Logger.With().Str("component", "hal").Logger(),
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		clock:  newHostClock(cfg.FixedStep),
		frames: &FrameQueue{},
	}
}

func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input        { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock        { return h.clock }
func (h *hostHAL) Frames() *FrameQueue { return h.frames }

// frame runs one host frame: advance the clock, let the app react to input,
// run the queued frame callbacks and present.
func (h *hostHAL) frame(step func() error) error {
	h.clock.step()
	if step != nil {
		if err := step(); err != nil {
			return err
		}
	}
	h.frames.Flush()
	return h.fb.Present()
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
