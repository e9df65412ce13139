package quarkgl

// Target is a pixel sink for software rendering.
//
// Implementations clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderSolidFlat RenderMode = iota
	RenderWireframe
)

func (m RenderMode) String() string {
	if m == RenderWireframe {
		return "wireframe"
	}
	return "solid"
}
