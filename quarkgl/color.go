package quarkgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// Hex unpacks a 0xRRGGBB integer into an opaque color.
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// Uint32 packs the color as 0xRRGGBB, dropping alpha.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Scale multiplies the RGB channels by s clamped to [0,1].
func (c Color) Scale(s float32) Color {
	s = Clamp01(s)
	return Color{
		R: uint8(float32(c.R)*s + 0.5),
		G: uint8(float32(c.G)*s + 0.5),
		B: uint8(float32(c.B)*s + 0.5),
		A: c.A,
	}
}

// rgbf is a linear working color used while accumulating light.
type rgbf struct {
	r, g, b float32
}

func (c Color) rgbf() rgbf {
	return rgbf{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func (a rgbf) add(b rgbf) rgbf      { return rgbf{a.r + b.r, a.g + b.g, a.b + b.b} }
func (a rgbf) mul(b rgbf) rgbf      { return rgbf{a.r * b.r, a.g * b.g, a.b * b.b} }
func (a rgbf) scale(s float32) rgbf { return rgbf{a.r * s, a.g * s, a.b * s} }

func (a rgbf) color() Color {
	return Color{
		R: uint8(clampF32(a.r, 0, 1)*255 + 0.5),
		G: uint8(clampF32(a.g, 0, 1)*255 + 0.5),
		B: uint8(clampF32(a.b, 0, 1)*255 + 0.5),
		A: 0xFF,
	}
}
