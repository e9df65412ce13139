package quarkgl

import "testing"

type memTarget struct {
	w, h int
	pix  []Color
}

func newMemTarget(w, h int) *memTarget { return &memTarget{w: w, h: h, pix: make([]Color, w*h)} }

func (t *memTarget) Size() (int, int) { return t.w, t.h }

func (t *memTarget) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.pix[y*t.w+x] = c
}

func (t *memTarget) Clear(c Color) {
	for i := range t.pix {
		t.pix[i] = c
	}
}

func (t *memTarget) at(x, y int) Color { return t.pix[y*t.w+x] }

func testScene() *Scene {
	s := NewScene()
	s.Camera.Position = V3(0, 0, 10)
	s.Camera.Near = 0.1
	s.Camera.Far = 100
	return s
}

func TestRenderFillsClearColor(t *testing.T) {
	r := NewRenderer(true)
	r.SetClearColor(0x123456, 1)
	tgt := newMemTarget(16, 12)
	r.Render(tgt, testScene())
	for i, c := range tgt.pix {
		if c != RGB(0x12, 0x34, 0x56) {
			t.Fatalf("pixel %d: %+v", i, c)
		}
	}
}

func TestClearAlphaCompositesOverBlack(t *testing.T) {
	r := NewRenderer(false)
	r.SetClearColor(0xff8000, 0.5)
	if got := r.ClearColor(); got != RGB(0x80, 0x40, 0x00) {
		t.Fatalf("got %+v", got)
	}
	r.SetClearColor(0xffffff, 0)
	if got := r.ClearColor(); got != RGB(0, 0, 0) {
		t.Fatalf("got %+v", got)
	}
}

func TestRenderDrawsLitSphereOverBackground(t *testing.T) {
	s := testScene()
	s.Ambient = AmbientLight{Color: RGB(0x40, 0x40, 0x40), Intensity: 2}
	s.AddMesh(SphereMesh(2, 16, 12))

	r := NewRenderer(true)
	r.SetClearColor(0x0000ff, 1)
	tgt := newMemTarget(64, 64)
	r.Render(tgt, s)

	center := tgt.at(32, 32)
	if center == RGB(0, 0, 0xff) {
		t.Fatalf("sphere not drawn at center")
	}
	if tgt.at(0, 0) != RGB(0, 0, 0xff) {
		t.Fatalf("corner not background: %+v", tgt.at(0, 0))
	}
}

func TestSpotLightOnlyLightsInsideCone(t *testing.T) {
	s := testScene()
	s.AddMesh(Mesh{Material: Material{BaseColor: RGB(0xff, 0xff, 0xff)}})
	mat := s.Mesh(0).Material

	// A triangle facing +Z at the origin.
	a, b, c := V3(-1, -1, 0), V3(1, -1, 0), V3(0, 1, 0)

	if got := shade(s, mat, a, b, c); got != RGB(0, 0, 0) {
		t.Fatalf("unlit triangle not black: %+v", got)
	}

	id := s.AddSpotLight(SpotLight{
		Position:  V3(0, 0, 5),
		Target:    V3(0, 0, 0),
		Color:     RGB(0xff, 0, 0),
		Intensity: 1,
		Angle:     Deg(30),
		Penumbra:  0.5,
	})
	lit := shade(s, mat, a, b, c)
	if lit.R < 0xc0 || lit.G != 0 || lit.B != 0 {
		t.Fatalf("expected red light, got %+v", lit)
	}

	// Aim the cone away from the triangle.
	s.SpotLight(id).Target = V3(50, 0, 5)
	if got := shade(s, mat, a, b, c); got != RGB(0, 0, 0) {
		t.Fatalf("light outside cone still lit: %+v", got)
	}
}

func TestWireframeModeDrawsOutline(t *testing.T) {
	s := testScene()
	s.Ambient = AmbientLight{Color: RGB(0xff, 0xff, 0xff), Intensity: 1}
	s.AddMesh(CylinderMesh(1, 1, 2, 8))

	r := NewRenderer(false)
	r.Mode = RenderWireframe
	tgt := newMemTarget(48, 48)
	r.Render(tgt, s)

	lit := 0
	for _, c := range tgt.pix {
		if c != RGB(0, 0, 0) {
			lit++
		}
	}
	if lit == 0 || lit > len(tgt.pix)/2 {
		t.Fatalf("unexpected wireframe coverage: %d of %d", lit, len(tgt.pix))
	}
}

func TestMeshGeometrySizes(t *testing.T) {
	sp := SphereMesh(2, 32, 32)
	if len(sp.Vertices) != 33*33 {
		t.Fatalf("sphere verts: %d", len(sp.Vertices))
	}
	if len(sp.Indices) != (32*32*2-2*32)*3 {
		t.Fatalf("sphere indices: %d", len(sp.Indices))
	}
	cy := CylinderMesh(1, 1, 2, 32)
	if len(cy.Vertices) != 66 || len(cy.Indices) != 32*12 {
		t.Fatalf("cylinder: %d verts, %d indices", len(cy.Vertices), len(cy.Indices))
	}
	for _, v := range sp.Vertices {
		if !near(Len(v.Pos), 2) {
			t.Fatalf("sphere vertex off radius: %+v", v.Pos)
		}
	}
}

func TestRGB565TargetClipsAndPacks(t *testing.T) {
	tgt := &RGB565Target{Buf: make([]byte, 4*2*3), Stride: 8, W: 4, H: 3}
	tgt.SetPixel(-1, 0, RGB(0xff, 0xff, 0xff))
	tgt.SetPixel(4, 0, RGB(0xff, 0xff, 0xff))
	for _, b := range tgt.Buf {
		if b != 0 {
			t.Fatalf("out of bounds write landed in buffer")
		}
	}
	tgt.SetPixel(1, 2, RGB(0xff, 0, 0))
	off := 2*8 + 1*2
	if tgt.Buf[off] != 0x00 || tgt.Buf[off+1] != 0xF8 {
		t.Fatalf("red packed as %02x %02x", tgt.Buf[off], tgt.Buf[off+1])
	}
	tgt.Clear(RGB(0, 0, 0xff))
	if tgt.Buf[0] != 0x1F || tgt.Buf[1] != 0x00 {
		t.Fatalf("blue packed as %02x %02x", tgt.Buf[0], tgt.Buf[1])
	}
}
