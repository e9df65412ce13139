// Package palette converts between "#rrggbb" strings and 8-bit RGB triples and
// blends colors linearly.
package palette

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned for strings that are not "#" followed by
// exactly six hexadecimal digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Uint32 packs the color as 0xRRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromUint32 unpacks a 0xRRGGBB value. Bits above 24 are ignored.
func FromUint32(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c RGB) String() string { return RGBToHex(c) }

// HexToRGB parses a "#rrggbb" string. Upper and lower case digits are accepted.
func HexToRGB(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustHex is HexToRGB for package-level literals; it panics on bad input.
func MustHex(s string) RGB {
	c, err := HexToRGB(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBToHex formats c as a lowercase "#rrggbb" string.
func RGBToHex(c RGB) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Interpolate blends c1 towards c2 by factor, rounding each channel half up.
// factor is not clamped; callers pass values in [0,1].
func Interpolate(c1, c2 RGB, factor float64) RGB {
	return RGB{
		R: lerpChannel(c1.R, c2.R, factor),
		G: lerpChannel(c1.G, c2.G, factor),
		B: lerpChannel(c1.B, c2.B, factor),
	}
}

func lerpChannel(a, b uint8, f float64) uint8 {
	v := float64(a) + f*(float64(b)-float64(a))
	return uint8(int(math.Floor(v + 0.5)))
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
