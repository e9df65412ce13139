package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz int
}

// RunTerminal renders the framebuffer into the terminal using upper half
// blocks: each cell shows two vertically stacked pixels. The framebuffer
// follows the terminal size; resize events are applied on the loop goroutine
// between frames.
func RunTerminal(ctx context.Context, host HostConfig, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	cols, rows := screen.Size()
	host.Width, host.Height = cols, rows*2
	h := newHost(host)
	step := newApp(h)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			h.frames.Flush()
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				cols, rows := ev.Size()
				if h.fb.resize(cols, rows*2) {
					h.log.Debug().Int("cols", cols).Int("rows", rows).Msg("terminal resized")
					screen.Clear()
				}
			case *tcell.EventKey:
				h.kbd.emit(keyEventFromTcell(ev))
			}
		case <-t.C:
			if err := h.frame(step); err != nil {
				return err
			}
			blitTerminal(screen, h.fb)
		}
	}
}

func keyEventFromTcell(ev *tcell.EventKey) KeyEvent {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEvent{Code: KeyEscape, Press: true}
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}
	}
	return KeyEvent{Code: KeyUnknown, Press: true}
}

func blitTerminal(screen tcell.Screen, fb *hostFramebuffer) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	cols, rows := screen.Size()
	for y := 0; y < rows && y*2 < fb.height; y++ {
		for x := 0; x < cols && x < fb.width; x++ {
			tr, tg, tb := fb.rgbaAt(x, y*2)
			br, bg, bb := fb.rgbaAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			screen.SetContent(x, y, '▀', nil, style)
		}
	}
	screen.Show()
}
