// Package app wires the disco scene, its animation driver and keyboard
// controls onto a HAL.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"disco/hal"
	"disco/internal/anim"
	"disco/internal/config"
	"disco/internal/driver"
	"disco/internal/stage"
)

// ErrQuit is the cancellation cause when the user asks to exit.
var ErrQuit = errors.New("quit requested")

// ErrCrashed is returned by the step function after a frame panicked and
// Options.ExitOnCrash is set.
var ErrCrashed = errors.New("animation crashed")

const (
	orbitStep = 0.05
	zoomStep  = 2
)

type Options struct {
	Config config.Config
	Logger zerolog.Logger
	// Cancel stops the whole program; the driver shares its context.
	Cancel context.CancelCauseFunc
	// ExitOnCrash makes the step function fail after a panic instead of
	// keeping the crash screen up.
	ExitOnCrash bool
}

// Runtime exposes the running driver to other goroutines. It is usable before
// the host has called the app constructor.
type Runtime struct {
	drv atomic.Pointer[driver.Driver]
}

// Snapshot returns the driver state, or the zero Snapshot before start.
func (r *Runtime) Snapshot() driver.Snapshot {
	if d := r.drv.Load(); d != nil {
		return d.Snapshot()
	}
	return driver.Snapshot{}
}

// Driver returns the driver once the app has started.
func (r *Runtime) Driver() *driver.Driver { return r.drv.Load() }

type system struct {
	h      hal.HAL
	log    zerolog.Logger
	cancel context.CancelCauseFunc
	stage  *stage.Stage
	drv    *driver.Driver

	exitOnCrash bool
	crash       error
}

// New returns a constructor for the hal runners. The animation starts as
// soon as the host calls it and stops when ctx is done.
func New(ctx context.Context, rt *Runtime, opts Options) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		s := newSystem(ctx, h, opts)
		if rt != nil {
			rt.drv.Store(s.drv)
		}
		return s.step
	}
}

func newSystem(ctx context.Context, h hal.HAL, opts Options) *system {
	cfg := opts.Config
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := opts.Logger.With().Str("component", "app").Logger()

	fb := h.Display().Framebuffer()
	st := stage.New(fb, stage.Config{
		Dancers:    cfg.Scene.Dancers,
		Lights:     cfg.Scene.Lights,
		Seed:       seed,
		DriftBound: cfg.Scene.DriftBound,
		HUD:        cfg.HUD,
	})
	ac := st.Context()
	ac.Cycle = anim.NewColorCycle(anim.NewRandSampler(seed+1), cfg.Cycle.Step)

	s := &system{
		h:           h,
		log:         log,
		cancel:      opts.Cancel,
		stage:       st,
		exitOnCrash: opts.ExitOnCrash,
	}
	s.drv = driver.New(ac, &guardedScheduler{q: h.Frames(), onPanic: s.crashed}, driver.Options{
		Clock:    h.Clock(),
		Logger:   &opts.Logger,
		LogEvery: cfg.LogEvery,
	})
	st.HUDLines = func() []string {
		return []string{
			fmt.Sprintf("frame %d", s.drv.Frames()),
			fmt.Sprintf("bg %s  t=%.2f", ac.Cycle.Current(), ac.Cycle.Factor()),
		}
	}

	log.Info().
		Int64("seed", seed).
		Int("width", fb.Width()).
		Int("height", fb.Height()).
		Msg("scene ready")
	s.drv.Start(ctx)
	return s
}

// step runs once per host frame before the frame queue is flushed.
func (s *system) step() error {
	if s.crash != nil && s.exitOnCrash {
		return s.crash
	}
	kbd := s.h.Input().Keyboard()
	if kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-kbd.Events():
			s.handleKey(ev)
		default:
			return nil
		}
	}
}

func (s *system) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyEscape:
		s.quit()
		return
	case hal.KeyLeft:
		s.stage.Orbit(-orbitStep, 0)
		return
	case hal.KeyRight:
		s.stage.Orbit(orbitStep, 0)
		return
	case hal.KeyUp:
		s.stage.Orbit(0, orbitStep)
		return
	case hal.KeyDown:
		s.stage.Orbit(0, -orbitStep)
		return
	}
	switch ev.Rune {
	case 'q', 'Q':
		s.quit()
	case 'w', 'W':
		mode := s.stage.ToggleWireframe()
		s.log.Debug().Stringer("mode", mode).Msg("render mode")
	case 'h', 'H':
		s.stage.ToggleHUD()
	case '+', '=':
		s.stage.Zoom(-zoomStep)
	case '-', '_':
		s.stage.Zoom(zoomStep)
	}
}

func (s *system) quit() {
	if s.cancel != nil {
		s.cancel(ErrQuit)
	}
}

// guardedScheduler queues frame callbacks on the host frame queue and turns
// a panic inside one into a crash report.
type guardedScheduler struct {
	q       *hal.FrameQueue
	onPanic func(v any, stack []byte)
}

func (g *guardedScheduler) RequestFrame(fn func()) {
	g.q.RequestFrame(func() {
		defer func() {
			if v := recover(); v != nil {
				g.onPanic(v, stack())
			}
		}()
		fn()
	})
}
