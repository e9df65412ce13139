package anim

import (
	"math/rand"
	"sync"

	"disco/internal/palette"
)

// DefaultCycleStep is the factor increment per Advance.
const DefaultCycleStep = 0.01

// Initial gradient endpoints.
var (
	CycleStart = palette.MustHex("#ff0000")
	CycleEnd   = palette.MustHex("#0000ff")
)

// Sampler supplies new gradient endpoints.
type Sampler interface {
	Sample() palette.RGB
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func() palette.RGB

func (f SamplerFunc) Sample() palette.RGB { return f() }

type randSampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandSampler returns a sampler drawing uniform 24-bit colors from a
// seeded source.
func NewRandSampler(seed int64) Sampler {
	return &randSampler{rnd: rand.New(rand.NewSource(seed))}
}

func (s *randSampler) Sample() palette.RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return palette.FromUint32(uint32(s.rnd.Intn(1 << 24)))
}

// ColorCycle blends from Start to End and, once the blend passes 1, restarts
// from the old End towards a freshly sampled color. It never terminates.
type ColorCycle struct {
	Start palette.RGB
	End   palette.RGB
	Step  float64

	// steps counts Advance calls since the last wrap; Factor is steps*Step.
	steps   int
	factor  float64
	current palette.RGB
	sampler Sampler
}

// NewColorCycle starts at red→blue with factor 0. A zero step uses
// DefaultCycleStep.
func NewColorCycle(sampler Sampler, step float64) *ColorCycle {
	if step <= 0 {
		step = DefaultCycleStep
	}
	if sampler == nil {
		sampler = NewRandSampler(1)
	}
	return &ColorCycle{
		Start:   CycleStart,
		End:     CycleEnd,
		Step:    step,
		current: CycleStart,
		sampler: sampler,
	}
}

// Advance moves the blend one step and recomputes the current color.
func (c *ColorCycle) Advance() {
	c.steps++
	c.factor = float64(c.steps) * c.Step
	if c.factor > 1 {
		c.steps = 0
		c.factor = 0
		c.Start = c.End
		c.End = c.sampler.Sample()
	}
	c.current = palette.Interpolate(c.Start, c.End, c.factor)
}

// Factor reports the blend progress in [0,1].
func (c *ColorCycle) Factor() float64 { return c.factor }

// Current is the color computed by the last Advance.
func (c *ColorCycle) Current() palette.RGB { return c.current }
