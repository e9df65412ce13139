// Package driver runs the per-frame animation cycle of the disco scene.
//
// Every frame the driver reads the clock, spins the ball, moves the dancers
// and the lights, advances the background color, pushes the color to the
// renderer and draws. It then asks the scheduler for the next frame unless
// its context has been cancelled.
package driver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"disco/internal/anim"
)

// Scheduler invokes fn once before the next frame is presented.
type Scheduler interface {
	RequestFrame(fn func())
}

// Renderer is the drawing side of the scene.
type Renderer interface {
	SetClearColor(color uint32, alpha float64)
	Render()
}

// Clock reports elapsed time in milliseconds.
type Clock interface {
	NowMillis() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

func (f ClockFunc) NowMillis() float64 { return f() }

// WallClock reports milliseconds since the Unix epoch.
var WallClock Clock = ClockFunc(func() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
})

// AnimationContext owns every animated entity and the renderer handle.
// Only the driver mutates it while running.
type AnimationContext struct {
	Body     *anim.RotatingBody
	Dancers  []*anim.DancingEntity
	Lights   []*anim.OrbitingLight
	Cycle    *anim.ColorCycle
	Renderer Renderer

	// DriftBound wraps dancer X/Z into [-DriftBound, DriftBound) when > 0.
	DriftBound float64
}

// Options tunes a Driver. The zero value uses the wall clock and a no-op logger.
type Options struct {
	Clock    Clock
	Logger   *zerolog.Logger
	LogEvery uint64
}

type Driver struct {
	ac    *AnimationContext
	sched Scheduler
	clock Clock
	log   zerolog.Logger
	every uint64

	frames  atomic.Uint64
	running atomic.Bool
	lastT   float64

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}

	mu   sync.RWMutex
	snap Snapshot
}

func New(ac *AnimationContext, sched Scheduler, opts Options) *Driver {
	clock := opts.Clock
	if clock == nil {
		clock = WallClock
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "driver").Logger()
	}
	d := &Driver{
		ac:    ac,
		sched: sched,
		clock: clock,
		log:   log,
		every: opts.LogEvery,
		done:  make(chan struct{}),
	}
	d.publish()
	return d
}

// Start schedules the first frame. The loop keeps rescheduling itself until
// ctx is done; Done is closed once a frame callback observes cancellation.
func (d *Driver) Start(ctx context.Context) {
	d.startOnce.Do(func() {
		d.running.Store(true)
		d.log.Info().
			Int("dancers", len(d.ac.Dancers)).
			Int("lights", len(d.ac.Lights)).
			Msg("animation started")

		var frame func()
		frame = func() {
			if ctx.Err() != nil {
				d.stop(ctx)
				return
			}
			d.Step()
			if ctx.Err() != nil {
				d.stop(ctx)
				return
			}
			d.sched.RequestFrame(frame)
		}
		d.sched.RequestFrame(frame)
	})
}

func (d *Driver) stop(ctx context.Context) {
	d.stopOnce.Do(func() {
		d.running.Store(false)
		d.publish()
		d.log.Info().
			Uint64("frames", d.frames.Load()).
			AnErr("cause", context.Cause(ctx)).
			Msg("animation stopped")
		close(d.done)
	})
}

// Run starts the loop and blocks until it has stopped. Someone else must keep
// flushing the scheduler meanwhile. It returns the cause of ctx.
func (d *Driver) Run(ctx context.Context) error {
	d.Start(ctx)
	<-d.done
	return context.Cause(ctx)
}

// Done is closed after the loop has stopped.
func (d *Driver) Done() <-chan struct{} { return d.done }

// Running reports whether the loop is scheduled.
func (d *Driver) Running() bool { return d.running.Load() }

// Frames is the number of completed steps.
func (d *Driver) Frames() uint64 { return d.frames.Load() }

// Step runs a single frame. Rendering sees the state after all updates.
func (d *Driver) Step() {
	ac := d.ac
	t := d.clock.NowMillis()
	d.lastT = t

	if ac.Body != nil {
		anim.Spin(ac.Body)
	}
	for _, e := range ac.Dancers {
		anim.Dance(e, t, ac.DriftBound)
	}
	for _, l := range ac.Lights {
		anim.Orbit(l, t)
	}

	var bg uint32
	if ac.Cycle != nil {
		ac.Cycle.Advance()
		bg = ac.Cycle.Current().Uint32()
	}
	if ac.Renderer != nil {
		ac.Renderer.SetClearColor(bg, 1)
		ac.Renderer.Render()
	}

	n := d.frames.Add(1)
	d.publish()
	if d.every > 0 && n%d.every == 0 {
		ev := d.log.Debug().Uint64("frame", n)
		if ac.Cycle != nil {
			ev = ev.Stringer("clear", ac.Cycle.Current()).Float64("factor", ac.Cycle.Factor())
		}
		ev.Msg("frame")
	}
}
