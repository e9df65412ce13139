// Package anim holds the per-frame motion rules of the disco scene and the
// background color cycle.
//
// Motion functions mutate only the transform fields of the entity they are
// given. Time t is in milliseconds.
package anim

import "math"

const (
	SpinRate = 0.01

	DanceBaseY     = 1.0
	DanceAmplitude = 2.0
	DanceBobRate   = 0.002
	DanceDriftRate = 0.001
	DanceDrift     = 0.05
	DanceSpinY     = 0.05
	DanceSpinX     = 0.02

	OrbitRate   = 0.001
	OrbitRadius = 20.0
	OrbitHeight = 20.0
)

// Vec3 is a position or an Euler rotation in radians.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RotatingBody is the disco ball.
type RotatingBody struct {
	Position Vec3
	Rotation Vec3
}

// DancingEntity is one of the bobbing cylinders. Index is its creation order
// and doubles as its phase offset.
type DancingEntity struct {
	Index    int
	Position Vec3
	Rotation Vec3
}

// OrbitingLight is a spot light circling the origin at a fixed height.
type OrbitingLight struct {
	Index    int
	Color    uint32
	Radius   float64
	Position Vec3
}

// NewOrbitingLight places a light at (x, OrbitHeight, z) with the default
// orbit radius.
func NewOrbitingLight(index int, color uint32, x, z float64) *OrbitingLight {
	return &OrbitingLight{
		Index:    index,
		Color:    color,
		Radius:   OrbitRadius,
		Position: Vec3{X: x, Y: OrbitHeight, Z: z},
	}
}

// Spin turns the body around Y by a fixed amount per frame.
func Spin(b *RotatingBody) {
	b.Rotation.Y += SpinRate
}

// Dance bobs e vertically as a pure function of t and accumulates a small
// horizontal drift and spin. Drift is unbounded unless bound > 0, in which
// case X and Z wrap into [-bound, bound).
func Dance(e *DancingEntity, t float64, bound float64) {
	phase := float64(e.Index)
	e.Position.Y = DanceBaseY + math.Sin(t*DanceBobRate+phase)*DanceAmplitude
	e.Position.X += math.Sin(t*DanceDriftRate+phase) * DanceDrift
	e.Position.Z += math.Cos(t*DanceDriftRate+phase) * DanceDrift
	if bound > 0 {
		e.Position.X = wrap(e.Position.X, bound)
		e.Position.Z = wrap(e.Position.Z, bound)
	}
	e.Rotation.Y += DanceSpinY
	e.Rotation.X += DanceSpinX
}

// Orbit places l on its circle for time t. Height is left untouched.
func Orbit(l *OrbitingLight, t float64) {
	r := l.Radius
	if r == 0 {
		r = OrbitRadius
	}
	phase := t*OrbitRate + float64(l.Index)
	l.Position.X = math.Sin(phase) * r
	l.Position.Z = math.Cos(phase) * r
}

func wrap(v, bound float64) float64 {
	span := 2 * bound
	v = math.Mod(v+bound, span)
	if v < 0 {
		v += span
	}
	if v >= span {
		v = 0
	}
	return v - bound
}
