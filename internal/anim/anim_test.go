package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disco/internal/palette"
)

func seqSampler(colors ...palette.RGB) Sampler {
	i := 0
	return SamplerFunc(func() palette.RGB {
		c := colors[i%len(colors)]
		i++
		return c
	})
}

func TestSpinAccumulates(t *testing.T) {
	var b RotatingBody
	for n := 1; n <= 500; n++ {
		Spin(&b)
		require.InDelta(t, 0.01*float64(n), b.Rotation.Y, 1e-9)
	}
	assert.Zero(t, b.Rotation.X)
	assert.Zero(t, b.Rotation.Z)
}

func TestDanceHeightBounded(t *testing.T) {
	for i := 0; i < 10; i++ {
		e := DancingEntity{Index: i}
		for ms := 0.0; ms < 20000; ms += 16.7 {
			Dance(&e, 1.7e12+ms, 0)
			if e.Position.Y < -1-1e-12 || e.Position.Y > 3+1e-12 {
				t.Fatalf("dancer %d at t=%v: y=%v out of [-1,3]", i, ms, e.Position.Y)
			}
		}
	}
}

func TestDanceHeightIsNotAccumulated(t *testing.T) {
	e := DancingEntity{Index: 3}
	Dance(&e, 1000, 0)
	first := e.Position.Y
	Dance(&e, 1000, 0)
	assert.Equal(t, first, e.Position.Y)
	assert.InDelta(t, 1+math.Sin(1000*0.002+3)*2, first, 1e-12)
}

func TestDanceDriftAndSpinAccumulate(t *testing.T) {
	e := DancingEntity{Index: 2, Position: Vec3{X: 4, Z: -3}}
	const tm = 12345.0
	Dance(&e, tm, 0)
	Dance(&e, tm, 0)
	assert.InDelta(t, 4+2*math.Sin(tm*0.001+2)*0.05, e.Position.X, 1e-12)
	assert.InDelta(t, -3+2*math.Cos(tm*0.001+2)*0.05, e.Position.Z, 1e-12)
	assert.InDelta(t, 0.10, e.Rotation.Y, 1e-12)
	assert.InDelta(t, 0.04, e.Rotation.X, 1e-12)
}

func TestDanceWrapsWhenBounded(t *testing.T) {
	e := DancingEntity{Position: Vec3{X: 9.99, Z: -9.99}}
	for n := 0; n < 100000; n++ {
		Dance(&e, float64(n)*16, 10)
		if e.Position.X < -10 || e.Position.X >= 10 || e.Position.Z < -10 || e.Position.Z >= 10 {
			t.Fatalf("frame %d: position %+v escaped bound", n, e.Position)
		}
	}
}

func TestOrbitRadius(t *testing.T) {
	for i := 0; i < 6; i++ {
		l := NewOrbitingLight(i, 0xff0000, 3, -7)
		for ms := 0.0; ms < 60000; ms += 33 {
			Orbit(l, 1.7e12+ms)
			r := math.Hypot(l.Position.X, l.Position.Z)
			if math.Abs(r-20) > 1e-6 {
				t.Fatalf("light %d: radius %v", i, r)
			}
			if l.Position.Y != OrbitHeight {
				t.Fatalf("light %d: height changed to %v", i, l.Position.Y)
			}
		}
	}
}

func TestColorCycleInitialState(t *testing.T) {
	c := NewColorCycle(seqSampler(palette.RGB{G: 255}), 0)
	assert.Equal(t, palette.RGB{R: 255}, c.Start)
	assert.Equal(t, palette.RGB{B: 255}, c.End)
	assert.Zero(t, c.Factor())
	assert.Equal(t, DefaultCycleStep, c.Step)
	assert.Equal(t, c.Start, c.Current())
}

func TestColorCycleMonotonic(t *testing.T) {
	c := NewColorCycle(seqSampler(palette.RGB{G: 255}), 0)
	start, end := c.Start, c.End
	prev := -1.0
	for k := 1; k < 100; k++ {
		c.Advance()
		require.InDelta(t, 0.01*float64(k), c.Factor(), 1e-9)
		require.Greater(t, c.Factor(), prev)
		require.Equal(t, start, c.Start)
		require.Equal(t, end, c.End)
		require.Equal(t, palette.Interpolate(start, end, c.Factor()), c.Current())
		prev = c.Factor()
	}
}

func TestColorCycleWraps(t *testing.T) {
	next := palette.RGB{R: 0x12, G: 0x34, B: 0x56}
	c := NewColorCycle(seqSampler(next), 0)
	oldEnd := c.End
	for k := 0; k < 101; k++ {
		c.Advance()
	}
	assert.GreaterOrEqual(t, c.Factor(), 0.0)
	assert.Less(t, c.Factor(), 0.01)
	assert.Equal(t, oldEnd, c.Start)
	assert.Equal(t, next, c.End)
	assert.NotEqual(t, oldEnd, c.End)
	assert.Equal(t, oldEnd, c.Current())
}

func TestColorCycleRandomSamplerChangesEnd(t *testing.T) {
	c := NewColorCycle(NewRandSampler(42), 0)
	oldEnd := c.End
	for k := 0; k < 101; k++ {
		c.Advance()
	}
	assert.Equal(t, oldEnd, c.Start)
	assert.NotEqual(t, oldEnd, c.End)
}

func TestRandSamplerDeterministic(t *testing.T) {
	a, b := NewRandSampler(7), NewRandSampler(7)
	for i := 0; i < 32; i++ {
		require.Equal(t, a.Sample(), b.Sample())
	}
}
