package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disco/hal"
	"disco/internal/anim"
	"disco/quarkgl"
)

func newFB(w, h int) hal.Framebuffer {
	return hal.New(hal.HostConfig{Width: w, Height: h}).Display().Framebuffer()
}

func TestNewBuildsDiscoScene(t *testing.T) {
	s := New(newFB(64, 48), Config{Dancers: 10, Lights: 6, Seed: 7})
	ac := s.Context()

	require.Len(t, ac.Dancers, 10)
	require.Len(t, ac.Lights, 6)
	assert.Equal(t, 11, s.Scene().Meshes())
	assert.Same(t, s, ac.Renderer)
	assert.Equal(t, 10.0, ac.Body.Position.Y)

	for i, e := range ac.Dancers {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, 1.0, e.Position.Y)
		assert.GreaterOrEqual(t, e.Position.X, -10.0)
		assert.Less(t, e.Position.X, 10.0)
		assert.GreaterOrEqual(t, e.Position.Z, -10.0)
		assert.Less(t, e.Position.Z, 10.0)
	}
	for i, l := range ac.Lights {
		assert.Equal(t, SpotColors[i], l.Color)
		assert.Equal(t, anim.OrbitHeight, l.Position.Y)
		assert.Less(t, l.Position.X, 20.0)
		assert.GreaterOrEqual(t, l.Position.X, -20.0)
	}

	cam := s.Scene().Camera
	assert.InDelta(t, 30, cam.Position.Z, 1e-4)
	assert.InDelta(t, 0, cam.Position.X, 1e-4)
}

func TestSameSeedSameStage(t *testing.T) {
	a := New(newFB(8, 8), Config{Dancers: 4, Lights: 3, Seed: 42}).Context()
	b := New(newFB(8, 8), Config{Dancers: 4, Lights: 3, Seed: 42}).Context()
	for i := range a.Dancers {
		assert.Equal(t, a.Dancers[i].Position, b.Dancers[i].Position)
	}
	for i := range a.Lights {
		assert.Equal(t, a.Lights[i].Position, b.Lights[i].Position)
	}
}

func TestLightColorsRepeatPastPalette(t *testing.T) {
	ac := New(newFB(8, 8), Config{Lights: 8}).Context()
	require.Len(t, ac.Lights, 8)
	assert.Equal(t, SpotColors[0], ac.Lights[6].Color)
	assert.Equal(t, SpotColors[1], ac.Lights[7].Color)
}

func TestRenderSyncsTransformsAndClears(t *testing.T) {
	fb := newFB(32, 24)
	s := New(fb, Config{Dancers: 2, Lights: 1})
	ac := s.Context()

	ac.Body.Rotation.Y = 0.5
	ac.Dancers[1].Position = anim.Vec3{X: 3, Y: 2, Z: -1}
	ac.Lights[0].Position.X = 7

	s.SetClearColor(0x00ff00, 1)
	s.Render()

	assert.InDelta(t, 0.5, s.Scene().Mesh(s.ball).Rotation.Y, 1e-6)
	assert.Equal(t, quarkgl.V3(3, 2, -1), s.Scene().Mesh(s.dancers[1]).Position)
	assert.InDelta(t, 7, s.Scene().SpotLight(s.spots[0]).Position.X, 1e-6)

	// Top-left corner sees only background: pure green in RGB565.
	buf := fb.Buffer()
	assert.Equal(t, byte(0xE0), buf[0])
	assert.Equal(t, byte(0x07), buf[1])
}

func TestRenderFollowsFramebufferSize(t *testing.T) {
	h := hal.New(hal.HostConfig{Width: 16, Height: 16})
	fb := h.Display().Framebuffer()
	s := New(fb, Config{})
	s.Scene().Mesh(s.ball).Enabled = false
	s.SetClearColor(0xffffff, 1)
	s.Render()
	for _, b := range fb.Buffer() {
		require.Equal(t, byte(0xFF), b)
	}
}

func TestTogglesAndOrbit(t *testing.T) {
	s := New(newFB(8, 8), Config{})
	assert.Equal(t, quarkgl.RenderWireframe, s.ToggleWireframe())
	assert.Equal(t, quarkgl.RenderSolidFlat, s.ToggleWireframe())
	assert.True(t, s.ToggleHUD())
	assert.False(t, s.ToggleHUD())

	before := s.Scene().Camera.Position
	s.Orbit(0.3, 0)
	after := s.Scene().Camera.Position
	assert.NotEqual(t, before, after)
	assert.InDelta(t, 30, quarkgl.Len(after), 1e-3)

	s.Zoom(-1000)
	assert.InDelta(t, 5, quarkgl.Len(s.Scene().Camera.Position), 1e-3)
}

func TestHUDDrawsText(t *testing.T) {
	fb := newFB(200, 40)
	s := New(fb, Config{})
	s.Scene().Mesh(s.ball).Enabled = false
	s.HUDLines = func() []string { return []string{"frame 1"} }
	s.SetClearColor(0x000000, 1)

	lit := func() int {
		n := 0
		for _, b := range fb.Buffer() {
			if b != 0 {
				n++
			}
		}
		return n
	}
	s.Render()
	require.Zero(t, lit())

	s.ToggleHUD()
	s.Render()
	assert.Positive(t, lit())
}

func TestWrapLines(t *testing.T) {
	got := WrapLines([]string{"abcdef", "", "ab cd"}, 3)
	assert.Equal(t, []string{"abc", "def", "", "ab ", "cd"}, got)
}
