package driver

import (
	"disco/internal/anim"
	"disco/internal/palette"
)

// Snapshot is a copy of the animation state taken after a frame. It is safe
// to read from other goroutines.
type Snapshot struct {
	Frames   uint64       `json:"frames"`
	Running  bool         `json:"running"`
	TimeMS   float64      `json:"timeMs"`
	Clear    string       `json:"clear"`
	Start    string       `json:"start"`
	End      string       `json:"end"`
	Factor   float64      `json:"factor"`
	BallSpin float64      `json:"ballSpin"`
	Dancers  []EntityView `json:"dancers"`
	Lights   []LightView  `json:"lights"`
}

type EntityView struct {
	Index    int       `json:"index"`
	Position anim.Vec3 `json:"position"`
	Rotation anim.Vec3 `json:"rotation"`
}

type LightView struct {
	Index    int       `json:"index"`
	Color    string    `json:"color"`
	Position anim.Vec3 `json:"position"`
}

// Snapshot returns the state published by the last frame.
func (d *Driver) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := d.snap
	s.Dancers = append([]EntityView(nil), d.snap.Dancers...)
	s.Lights = append([]LightView(nil), d.snap.Lights...)
	return s
}

func (d *Driver) publish() {
	ac := d.ac
	d.mu.Lock()
	defer d.mu.Unlock()

	s := &d.snap
	s.Frames = d.frames.Load()
	s.Running = d.running.Load()
	s.TimeMS = d.lastT
	if ac.Cycle != nil {
		s.Clear = ac.Cycle.Current().String()
		s.Start = ac.Cycle.Start.String()
		s.End = ac.Cycle.End.String()
		s.Factor = ac.Cycle.Factor()
	}
	if ac.Body != nil {
		s.BallSpin = ac.Body.Rotation.Y
	}
	s.Dancers = s.Dancers[:0]
	for _, e := range ac.Dancers {
		s.Dancers = append(s.Dancers, EntityView{Index: e.Index, Position: e.Position, Rotation: e.Rotation})
	}
	s.Lights = s.Lights[:0]
	for _, l := range ac.Lights {
		s.Lights = append(s.Lights, LightView{
			Index:    l.Index,
			Color:    palette.FromUint32(l.Color).String(),
			Position: l.Position,
		})
	}
}
