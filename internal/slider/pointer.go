package slider

// Phase is the stage of a pointer gesture.
type Phase int

const (
	PhaseDown Phase = iota + 1
	PhaseMove
	PhaseUp
	// PhaseCancel is an interruption from the platform; it ends a drag just
	// like PhaseUp.
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Point is a position in the host's global coordinate space.
type Point struct {
	X, Y float64
}

// PointerEvent is a normalized mouse or touch event.
type PointerEvent struct {
	Position Point
	Phase    Phase
	// OnKnot is set when the gesture started on the knot itself rather than
	// on the bare track.
	OnKnot bool
}

// Metrics are the host element sizes on both axes.
type Metrics struct {
	TrackWidth  float64
	TrackHeight float64
	KnotWidth   float64
	KnotHeight  float64
}

// Frame is what the host draws. Offsets are measured from the track start in
// host pixels.
type Frame struct {
	Value float64
	// KnotOffset is the distance of the knot from the Min end of the track.
	KnotOffset float64
	// KnotPosition is the distance of the knot's leading edge from the
	// track's top/left edge; it differs from KnotOffset when inverted.
	KnotPosition float64
	// FillLength runs from the Min end of the track to the knot centre.
	FillLength float64
	Vertical   bool
	Inverted   bool
	Dragging   bool
	Disabled   bool
	// DisabledChanged is set on the first frame and whenever Disabled differs
	// from the previously rendered frame.
	DisabledChanged bool
}

// Host is the environment a slider lives in. All methods are called on the
// host's UI thread except Render, which runs from the redraw scheduler.
type Host interface {
	Metrics() Metrics
	// Origin is the track's top-left corner in the coordinate space of
	// PointerEvent positions.
	Origin() Point
	// Subscribe starts delivering move/up/cancel events to listener until the
	// returned function is called.
	Subscribe(listener func(PointerEvent)) (unsubscribe func())
	Render(Frame)
}
