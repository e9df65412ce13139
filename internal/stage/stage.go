// Package stage builds the disco scene and draws it: a spinning mirror ball,
// dancing cylinders and orbiting colored spot lights, rendered by quarkgl into
// the host framebuffer.
package stage

import (
	"image/color"
	"math"
	"math/rand"

	"disco/hal"
	"disco/internal/anim"
	"disco/internal/driver"
	"disco/quarkgl"
)

// SpotColors are the spot light colors in creation order.
var SpotColors = []uint32{0xff0000, 0x00ff00, 0x0000ff, 0xffff00, 0xff00ff, 0x00ffff}

const (
	ballRadius   = 2
	ballSegments = 32
	ballHeight   = 10

	dancerRadius   = 1
	dancerHeight   = 2
	dancerSegments = 16
	dancerSpread   = 10

	spotSpread    = 20
	spotAngle     = math.Pi / 6
	spotPenumbra  = 0.5
	spotIntensity = 2

	cameraFOV      = 75
	cameraDistance = 30
)

// Config sizes the scene.
type Config struct {
	Dancers int
	Lights  int
	Seed    int64

	// DriftBound is copied into the animation context.
	DriftBound float64

	HUD       bool
	Wireframe bool
}

// Stage owns the quarkgl scene and implements driver.Renderer over a hal
// framebuffer. Render is called on the host loop goroutine only.
type Stage struct {
	fb    hal.Framebuffer
	scene *quarkgl.Scene
	r     *quarkgl.Renderer
	ac    *driver.AnimationContext
	orbit quarkgl.OrbitController

	ball    int
	dancers []int
	spots   []int

	hud bool
	// HUDLines supplies the overlay text; nil shows the key help only.
	HUDLines func() []string
}

// New builds the scene and its animation context. Random placement comes from
// cfg.Seed so the same seed reproduces the same stage.
func New(fb hal.Framebuffer, cfg Config) *Stage {
	if cfg.Dancers < 0 {
		cfg.Dancers = 0
	}
	if cfg.Lights < 0 {
		cfg.Lights = 0
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &Stage{
		fb:    fb,
		scene: quarkgl.NewScene(),
		r:     quarkgl.NewRenderer(true),
		hud:   cfg.HUD,
		orbit: quarkgl.OrbitController{Radius: cameraDistance, MinRadius: 5, MaxRadius: 200},
	}
	if cfg.Wireframe {
		s.r.Mode = quarkgl.RenderWireframe
	}

	s.scene.Camera.FOVYRad = quarkgl.Deg(cameraFOV)
	s.scene.Camera.Near = 0.1
	s.scene.Camera.Far = 1000
	s.orbit.Apply(&s.scene.Camera)
	s.scene.Ambient = quarkgl.AmbientLight{Color: quarkgl.Hex(0x404040), Intensity: 2}

	ac := &driver.AnimationContext{
		Body:       &anim.RotatingBody{Position: anim.Vec3{Y: ballHeight}},
		Renderer:   s,
		DriftBound: cfg.DriftBound,
	}

	ball := quarkgl.SphereMesh(ballRadius, ballSegments, ballSegments)
	ball.Material = quarkgl.Material{BaseColor: quarkgl.Hex(0x888888), Metalness: 0.9, Roughness: 0.1}
	s.ball = s.scene.AddMesh(ball)

	cyl := quarkgl.CylinderMesh(dancerRadius, dancerRadius, dancerHeight, dancerSegments)
	for i := 0; i < cfg.Dancers; i++ {
		m := cyl
		m.Material = quarkgl.Material{BaseColor: quarkgl.Hex(0xffffff)}
		s.dancers = append(s.dancers, s.scene.AddMesh(m))
		ac.Dancers = append(ac.Dancers, &anim.DancingEntity{
			Index: i,
			Position: anim.Vec3{
				X: rng.Float64()*2*dancerSpread - dancerSpread,
				Y: 1,
				Z: rng.Float64()*2*dancerSpread - dancerSpread,
			},
		})
	}

	for i := 0; i < cfg.Lights; i++ {
		c := SpotColors[i%len(SpotColors)]
		l := anim.NewOrbitingLight(i, c,
			rng.Float64()*2*spotSpread-spotSpread,
			rng.Float64()*2*spotSpread-spotSpread,
		)
		ac.Lights = append(ac.Lights, l)
		s.spots = append(s.spots, s.scene.AddSpotLight(quarkgl.SpotLight{
			Position:  vec(l.Position),
			Color:     quarkgl.Hex(c),
			Intensity: spotIntensity,
			Angle:     spotAngle,
			Penumbra:  spotPenumbra,
		}))
	}

	s.ac = ac
	s.sync()
	return s
}

// Context returns the animation context wired to this stage as renderer.
// The caller sets Cycle before starting a driver.
func (s *Stage) Context() *driver.AnimationContext { return s.ac }

// Scene exposes the underlying quarkgl scene.
func (s *Stage) Scene() *quarkgl.Scene { return s.scene }

// SetClearColor implements driver.Renderer.
func (s *Stage) SetClearColor(c uint32, alpha float64) {
	s.r.SetClearColor(c, float32(alpha))
}

// Render implements driver.Renderer. It copies entity transforms into the
// scene and draws into the framebuffer; the host presents it afterwards.
func (s *Stage) Render() {
	if s.fb == nil || s.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	s.sync()
	// The framebuffer may have been resized since the last frame.
	target := &quarkgl.RGB565Target{
		Buf:    s.fb.Buffer(),
		Stride: s.fb.StrideBytes(),
		W:      s.fb.Width(),
		H:      s.fb.Height(),
	}
	s.r.Render(target, s.scene)

	if !s.hud {
		return
	}
	lines := []string{"q/ESC exit  w wireframe  h hud"}
	if s.HUDLines != nil {
		lines = append(s.HUDLines(), lines...)
	}
	y := 2
	for _, line := range lines {
		DrawText(s.fb, 2, y, line, hudColor)
		y += LineHeight
	}
}

var hudColor = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}

func (s *Stage) sync() {
	ac := s.ac
	if ac.Body != nil {
		if m := s.scene.Mesh(s.ball); m != nil {
			m.Position = vec(ac.Body.Position)
			m.Rotation = vec(ac.Body.Rotation)
		}
	}
	for i, e := range ac.Dancers {
		if i >= len(s.dancers) {
			break
		}
		if m := s.scene.Mesh(s.dancers[i]); m != nil {
			m.Position = vec(e.Position)
			m.Rotation = vec(e.Rotation)
		}
	}
	for i, l := range ac.Lights {
		if i >= len(s.spots) {
			break
		}
		if sp := s.scene.SpotLight(s.spots[i]); sp != nil {
			sp.Position = vec(l.Position)
		}
	}
}

// ToggleWireframe flips the render mode and returns the new one.
func (s *Stage) ToggleWireframe() quarkgl.RenderMode {
	if s.r.Mode == quarkgl.RenderWireframe {
		s.r.Mode = quarkgl.RenderSolidFlat
	} else {
		s.r.Mode = quarkgl.RenderWireframe
	}
	return s.r.Mode
}

// ToggleHUD flips the overlay and reports whether it is now shown.
func (s *Stage) ToggleHUD() bool {
	s.hud = !s.hud
	return s.hud
}

// Orbit moves the camera around the origin.
func (s *Stage) Orbit(deltaYaw, deltaPitch float32) {
	s.orbit.Rotate(deltaYaw, deltaPitch)
	s.orbit.Apply(&s.scene.Camera)
}

// Zoom moves the camera towards or away from the origin.
func (s *Stage) Zoom(delta float32) {
	s.orbit.Zoom(delta)
	s.orbit.Apply(&s.scene.Camera)
}

func vec(v anim.Vec3) quarkgl.Vec3 {
	return quarkgl.V3(float32(v.X), float32(v.Y), float32(v.Z))
}
