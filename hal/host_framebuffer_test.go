package hal

import "testing"

func TestRGB565RoundTripExtremes(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}} {
		r, g, b := rgb888From565(rgb565(c[0], c[1], c[2]))
		if r != c[0] || g != c[1] || b != c[2] {
			t.Fatalf("%v -> %d,%d,%d", c, r, g, b)
		}
	}
}

func TestFramebufferClearAndSnapshot(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(255, 0, 0)
	dst := make([]byte, 3*2*4)
	fb.snapshotRGBA(dst)
	for i := 0; i < len(dst); i += 4 {
		if dst[i] != 255 || dst[i+1] != 0 || dst[i+2] != 0 || dst[i+3] != 255 {
			t.Fatalf("pixel %d: %v", i/4, dst[i:i+4])
		}
	}
	if r, g, b := fb.rgbaAt(2, 1); r != 255 || g != 0 || b != 0 {
		t.Fatalf("rgbaAt: %d,%d,%d", r, g, b)
	}
	if r, g, b := fb.rgbaAt(3, 0); r != 0 || g != 0 || b != 0 {
		t.Fatalf("out of range pixel not black")
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := newHostFramebuffer(4, 4)
	if fb.resize(4, 4) {
		t.Fatal("same size reported as change")
	}
	if !fb.resize(10, 6) {
		t.Fatal("resize not reported")
	}
	if fb.Width() != 10 || fb.Height() != 6 || fb.StrideBytes() != 20 || len(fb.Buffer()) != 120 {
		t.Fatalf("bad geometry %dx%d stride %d len %d", fb.Width(), fb.Height(), fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.resize(0, -3)
	if fb.Width() != 1 || fb.Height() != 1 {
		t.Fatalf("degenerate size not clamped: %dx%d", fb.Width(), fb.Height())
	}
}
