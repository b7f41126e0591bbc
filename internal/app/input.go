package app

import (
	"github.com/philipparndt/gointubate/pkg/controls"
	"gonum.org/v1/gonum/spatial/r2"
)

// Screen pixels of drag per unit of slider change
const (
	lowerIncisorDragScale = 5.0
	tubeDragScale         = 10.0
	bladeDragScale        = 5.0
)

// BeginDrag starts a drag at screen position p and returns what it grabbed
func (s *Session) BeginDrag(p r2.Vec) Target {
	s.Interaction.dragging = HitTest(s.geometry, s.View, p)
	s.Interaction.dragStart = p
	s.log.Debug("drag started", "target", s.Interaction.dragging, "x", p.X, "y", p.Y)
	return s.Interaction.dragging
}

// DragTo moves the grabbed object by the screen delta since the last call.
// It reports whether any value changed.
func (s *Session) DragTo(p r2.Vec) bool {
	if s.Interaction.dragging == TargetNone {
		return false
	}
	d := r2.Sub(p, s.Interaction.dragStart)
	s.Interaction.dragStart = p

	before := s.Values
	switch s.Interaction.dragging {
	case TargetLowerIncisor:
		_ = s.Values.Nudge(controls.LowerIncisorX, d.X/lowerIncisorDragScale)
		_ = s.Values.Nudge(controls.LowerIncisorY, d.Y/lowerIncisorDragScale)
	case TargetTube:
		_ = s.Values.Nudge(controls.TubeAngle, d.X/tubeDragScale)
	case TargetBlade:
		_ = s.Values.Nudge(controls.BladeAngle, d.X/bladeDragScale)
		_ = s.Values.Nudge(controls.BladeInsertion, d.Y/bladeDragScale)
	case TargetGlottis:
		// the glottis is placed from the blade and cannot be dragged itself
	}

	if s.Values == before {
		return false
	}
	s.Recompute()
	return true
}

// EndDrag releases the grabbed object
func (s *Session) EndDrag() {
	s.Interaction.dragging = TargetNone
}

// Key is a key press with its modifier state. Name uses the browser key
// names: "ArrowUp", "r", "1" and so on.
type Key struct {
	Name string
	Ctrl bool
}

// HandleKey runs the shortcut bound to k. It returns the notice of the
// command, if it produced one, and whether the key was handled.
func (s *Session) HandleKey(k Key) (*Notice, bool) {
	switch k.Name {
	case "ArrowUp":
		s.Adjust(controls.TubeAngle, 1)
	case "ArrowDown":
		s.Adjust(controls.TubeAngle, -1)
	case "ArrowLeft":
		s.Adjust(controls.BladeInsertion, -1)
	case "ArrowRight":
		s.Adjust(controls.BladeInsertion, 1)
	case "r":
		s.Reset()
	case "s":
		if !k.Ctrl {
			return nil, false
		}
		n := s.Save()
		return &n, true
	case "l":
		if !k.Ctrl {
			return nil, false
		}
		n := s.Load()
		return &n, true
	case "1", "2", "3", "4":
		names := s.presets.Names()
		i := int(k.Name[0] - '1')
		if i >= len(names) {
			return nil, true
		}
		n := s.LoadPreset(names[i])
		return &n, true
	default:
		return nil, false
	}
	return nil, true
}
