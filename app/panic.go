package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"disco/internal/stage"
)

func stack() []byte { return debug.Stack() }

// crashed logs a frame panic and replaces the picture with a crash screen.
// The animation does not resume.
func (s *system) crashed(v any, st []byte) {
	s.crash = fmt.Errorf("%w: %v", ErrCrashed, v)
	s.log.Error().
		Interface("panic", v).
		Bytes("stack", st).
		Msg("frame panicked")

	fb := s.h.Display().Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	lines := []string{
		"disco crashed:",
		fmt.Sprintf("frame: %d", s.drv.Frames()),
		fmt.Sprintf("panic: %v", v),
	}
	if len(st) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(st), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	fg := color.RGBA{A: 255}
	y := 0
	for _, line := range stage.WrapLines(lines, stage.TextColumns(fb)) {
		if y+stage.LineHeight > fb.Height() {
			break
		}
		stage.DrawText(fb, 0, y, line, fg)
		y += stage.LineHeight
	}
}
