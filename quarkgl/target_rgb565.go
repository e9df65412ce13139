package quarkgl

// RGB565Target renders into a little-endian RGB565 buffer laid out by rows of
// Stride bytes.
type RGB565Target struct {
	Buf    []byte
	Stride int
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c Color) {
	if !t.valid() {
		return
	}
	lo, hi := rgb565Bytes(c)
	for y := 0; y < t.H; y++ {
		row := t.Buf[y*t.Stride:]
		for x := 0; x < t.W && x*2+1 < len(row); x++ {
			row[x*2] = lo
			row[x*2+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return
	}
	t.Buf[off], t.Buf[off+1] = rgb565Bytes(c)
}

func (t *RGB565Target) valid() bool {
	return t != nil && t.Stride > 0 && t.W > 0 && t.H > 0 && len(t.Buf) >= t.Stride*(t.H-1)+t.W*2
}

func rgb565Bytes(c Color) (lo, hi byte) {
	p := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
	return byte(p), byte(p >> 8)
}
