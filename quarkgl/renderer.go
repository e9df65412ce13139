package quarkgl

import "math"

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it; the depth buffer is kept between frames.
type Renderer struct {
	Mode  RenderMode
	Depth bool

	clearColor Color
	clearAlpha float32

	depthBuf []float32
}

// NewRenderer creates a renderer with a black, opaque clear color.
func NewRenderer(enableDepth bool) *Renderer {
	return &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		clearColor: RGB(0, 0, 0),
		clearAlpha: 1,
	}
}

// SetClearColor sets the background as 0xRRGGBB plus an alpha in [0,1].
// Targets have no alpha channel, so the color is composited over black.
func (r *Renderer) SetClearColor(rgb uint32, alpha float32) {
	r.clearColor = Hex(rgb)
	r.clearAlpha = Clamp01(alpha)
}

// ClearColor reports the color the next Render fills the target with.
func (r *Renderer) ClearColor() Color {
	return r.clearColor.Scale(r.clearAlpha)
}

func (r *Renderer) ensureDepth(w, h int) {
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render draws the scene through its camera into the target. The aspect ratio
// follows the target size, so a resized target needs no extra call.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor())

	if r.Depth {
		r.ensureDepth(w, h)
	}

	view := s.Camera.View()
	proj := s.Camera.Projection(float32(w) / float32(h))
	vp := Mat4Mul(proj, view)

	s.eachMesh(func(m *Mesh) {
		r.renderMesh(t, w, h, vp, m, s)
	})
}

func (r *Renderer) renderMesh(t Target, w, h int, vp Mat4, m *Mesh, s *Scene) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	model := m.Transform()
	mvp := Mat4Mul(vp, model)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}
		v0, v1, v2 := m.Vertices[i0].Pos, m.Vertices[i1].Pos, m.Vertices[i2].Pos

		p0 := Mat4MulV4(mvp, Vec4{X: v0.X, Y: v0.Y, Z: v0.Z, W: 1})
		p1 := Mat4MulV4(mvp, Vec4{X: v1.X, Y: v1.Y, Z: v1.Z, W: 1})
		p2 := Mat4MulV4(mvp, Vec4{X: v2.X, Y: v2.Y, Z: v2.Z, W: 1})

		// Trivial clip: drop triangles touching the camera plane or behind it.
		if p0.W <= 0 || p1.W <= 0 || p2.W <= 0 {
			continue
		}

		ndc0, ndc1, ndc2 := toNDC(p0), toNDC(p1), toNDC(p2)
		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		w0 := Mat4MulPoint(model, v0)
		w1 := Mat4MulPoint(model, v1)
		w2 := Mat4MulPoint(model, v2)
		c := shade(s, m.Material, w0, w1, w2)

		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, x0, y0, x1, y1, c)
			r.drawLine(t, x1, y1, x2, y2, c)
			r.drawLine(t, x2, y2, x0, y0, c)
		default:
			r.fillTriangle(t, w, h, x0, y0, ndc0.Z, x1, y1, ndc1.Z, x2, y2, ndc2.Z, c)
		}
	}
}

// shade computes a flat color for a world-space triangle.
func shade(s *Scene, mat Material, a, b, c Vec3) Color {
	n := Normalize(Cross(b.Sub(a), c.Sub(a)))
	p := a.Add(b).Add(c).Mul(1.0 / 3)
	view := Normalize(s.Camera.Position.Sub(p))
	// Flat shading is two-sided: face the normal towards the viewer.
	if Dot(n, view) < 0 {
		n = n.Mul(-1)
	}

	base := mat.BaseColor.rgbf()
	metal := Clamp01(mat.Metalness)
	rough := Clamp01(mat.Roughness)
	shininess := 2 + (1-rough)*(1-rough)*96
	specTint := rgbf{1, 1, 1}.scale(1 - metal).add(base.scale(metal))
	specAmount := (1 - rough) * (0.25 + 0.75*metal)

	diffuse := s.Ambient.Color.rgbf().scale(s.Ambient.Intensity)
	var spec rgbf

	for i := range s.spots {
		l := &s.spots[i]
		if !l.Enabled || l.Intensity <= 0 {
			continue
		}
		toLight := l.Position.Sub(p)
		ld := Normalize(toLight)
		ndl := Dot(n, ld)
		if ndl <= 0 {
			continue
		}
		axis := Normalize(l.Target.Sub(l.Position))
		cosTheta := Dot(ld.Mul(-1), axis)
		outer := float32(math.Cos(float64(l.Angle)))
		inner := float32(math.Cos(float64(l.Angle * (1 - Clamp01(l.Penumbra)))))
		cone := smoothstep(outer, inner, cosTheta)
		if cone <= 0 {
			continue
		}
		lc := l.Color.rgbf().scale(l.Intensity * cone)
		diffuse = diffuse.add(lc.scale(ndl * (1 - 0.5*metal)))

		if specAmount > 0 {
			half := Normalize(ld.Add(view))
			nh := Dot(n, half)
			if nh > 0 {
				k := float32(math.Pow(float64(nh), float64(shininess))) * specAmount
				spec = spec.add(lc.mul(specTint).scale(k))
			}
		}
	}

	return base.mul(diffuse).add(spec).color()
}

type ndcPoint struct {
	X, Y, Z float32
}

func toNDC(p Vec4) ndcPoint {
	inv := 1 / p.W
	return ndcPoint{X: p.X * inv, Y: p.Y * inv, Z: p.Z * inv}
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if x < 0 || x >= w || idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]; map to [0,1].
	d := clampF32(z*0.5+0.5, 0, 1)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	minX, maxX := max(min(x0, x1, x2), 0), min(max(x0, x1, x2), w-1)
	minY, maxY := max(min(y0, y1, y2), 0), min(max(y0, y1, y2), h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			e0 := edgeFn(x1, y1, x2, y2, x, y)
			e1 := edgeFn(x2, y2, x0, y0, x, y)
			e2 := edgeFn(x0, y0, x1, y1, x, y)
			// Accept either winding: all edge values share the sign of area.
			if area > 0 && (e0 < 0 || e1 < 0 || e2 < 0) {
				continue
			}
			if area < 0 && (e0 > 0 || e1 > 0 || e2 > 0) {
				continue
			}
			z := (float32(e0)*z0 + float32(e1)*z1 + float32(e2)*z2) * invArea
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
