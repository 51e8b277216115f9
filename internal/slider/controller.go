package slider

import "math"

// stepEpsilon absorbs float error when a value already sits on a step.
const stepEpsilon = 1e-9

type dragState int

const (
	stateIdle dragState = iota
	stateDragging
)

// HandlePointer feeds a pointer event into the interaction state machine.
// Hosts deliver PhaseDown here and move/up/cancel to the listener registered
// through Host.Subscribe, which is HandlePointer as well.
func (s *Slider) HandlePointer(ev PointerEvent) {
	if s.destroyed {
		return
	}
	switch ev.Phase {
	case PhaseDown:
		s.pointerDown(ev)
	case PhaseMove:
		s.pointerMove(ev)
	case PhaseUp, PhaseCancel:
		s.pointerEnd(ev)
	}
}

func (s *Slider) pointerDown(ev PointerEvent) {
	if s.cfg.Disabled || s.state == stateDragging {
		return
	}
	s.dragVertical = s.cfg.Vertical
	s.geom.OriginOffset = s.axis(s.host.Origin())
	offset := s.offsetOf(ev.Position)

	if s.cfg.PaddingMode && !ev.OnKnot {
		s.tap(offset)
		return
	}

	s.state = stateDragging
	s.unsubscribe = s.host.Subscribe(s.HandlePointer)
	tracef("drag started at offset %.2f", offset)
	s.apply(PositionToValue(offset, s.geom, s.cfg), setOptions{})
}

func (s *Slider) pointerMove(ev PointerEvent) {
	if s.state != stateDragging || s.cfg.Disabled {
		return
	}
	s.apply(PositionToValue(s.offsetOf(ev.Position), s.geom, s.cfg), setOptions{})
}

func (s *Slider) pointerEnd(ev PointerEvent) {
	if s.state != stateDragging {
		return
	}
	s.closeSession()
	tracef("drag ended (%s) at value %v", ev.Phase, s.value)
	if s.geometryStale {
		s.resolveGeometry()
		p := ValueToPosition(s.value, s.geom, s.cfg)
		s.reclamp(p, setOptions{skipRedraw: true})
	}
	s.requestRender()
	if s.onDragEnd != nil {
		s.onDragEnd(s.value)
	}
}

// closeSession leaves the Dragging state and drops the transient listeners.
func (s *Slider) closeSession() {
	if s.state != stateDragging {
		return
	}
	s.state = stateIdle
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	if unsubscribe != nil {
		unsubscribe()
	}
}

// tap nudges the value one padding step towards the tapped side of the knot.
// The result is quantized in the direction of the tap, so a padding step
// smaller than Step still moves the knot to the next snap point.
func (s *Slider) tap(offset float64) {
	var target float64
	switch {
	case offset < s.knotOffset:
		steps := math.Floor((s.value-s.cfg.paddingStep()-s.cfg.Min)/s.cfg.Step + stepEpsilon)
		target = s.cfg.Min + steps*s.cfg.Step
	case offset > s.knotOffset:
		steps := math.Ceil((s.value+s.cfg.paddingStep()-s.cfg.Min)/s.cfg.Step - stepEpsilon)
		target = s.cfg.Min + steps*s.cfg.Step
	default:
		return
	}
	s.apply(ValueToPosition(target, s.geom, s.cfg), setOptions{})
}

// offsetOf converts a global pointer position into a knot offset measured
// from the Min end of the track.
func (s *Slider) offsetOf(p Point) float64 {
	pos := p.X
	if s.dragVertical {
		pos = p.Y
	}
	offset := pos - s.geom.OriginOffset - s.geom.KnotHalf()
	if s.cfg.Inverted {
		offset = s.geom.Valuable() - offset
	}
	return offset
}

func (s *Slider) axis(p Point) float64 {
	if s.cfg.Vertical {
		return p.Y
	}
	return p.X
}
