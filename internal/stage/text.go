package stage

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"disco/hal"
)

// LineHeight is the vertical advance of DrawText in pixels.
const LineHeight = 10

var font tinyfont.Fonter = &proggy.TinySZ8pt7b

// DrawText writes s with its top-left corner at (x, y).
func DrawText(fb hal.Framebuffer, x, y int, s string, c color.RGBA) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	tinyfont.WriteLine(fbDisplay{fb: fb}, font, int16(x), int16(y+LineHeight-2), s, c)
}

// TextColumns reports how many characters fit on one line of fb.
func TextColumns(fb hal.Framebuffer) int {
	_, w := tinyfont.LineWidth(font, "0")
	if w == 0 || fb == nil {
		return 1
	}
	return max(fb.Width()/int(w), 1)
}

// WrapLines splits lines so each fits in cols characters, dropping leading
// spaces on continuation lines.
func WrapLines(lines []string, cols int) []string {
	cols = max(cols, 1)
	var out []string
	for _, line := range lines {
		if line == "" {
			out = append(out, "")
			continue
		}
		for line != "" {
			if utf8.RuneCountInString(line) <= cols {
				out = append(out, line)
				break
			}
			i, n := 0, 0
			for n < cols {
				_, size := utf8.DecodeRuneInString(line[i:])
				i += size
				n++
			}
			out = append(out, line[:i])
			line = strings.TrimLeft(line[i:], " ")
		}
	}
	return out
}

type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= d.fb.Width() || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	p := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func (d fbDisplay) Display() error { return nil }
