package slider

// fakeHost records subscriptions and frames; frames are delivered through a
// manual frame source so tests decide when a display frame happens.
type fakeHost struct {
	metrics   Metrics
	origin    Point
	listeners map[int]func(PointerEvent)
	nextID    int
	frames    []Frame
	queue     []func()
}

func newFakeHost(track, knot float64) *fakeHost {
	return &fakeHost{
		metrics:   Metrics{TrackWidth: track, TrackHeight: track, KnotWidth: knot, KnotHeight: knot},
		listeners: map[int]func(PointerEvent){},
	}
}

func (h *fakeHost) Metrics() Metrics { return h.metrics }

func (h *fakeHost) Origin() Point { return h.origin }

func (h *fakeHost) Subscribe(listener func(PointerEvent)) func() {
	id := h.nextID
	h.nextID++
	h.listeners[id] = listener
	return func() { delete(h.listeners, id) }
}

func (h *fakeHost) Render(f Frame) { h.frames = append(h.frames, f) }

func (h *fakeHost) frameSource(fn func()) { h.queue = append(h.queue, fn) }

// tick runs every queued frame callback.
func (h *fakeHost) tick() {
	for len(h.queue) > 0 {
		fn := h.queue[0]
		h.queue = h.queue[1:]
		fn()
	}
}

// dispatch delivers move/up/cancel to subscribed listeners only, the way a
// document-level listener would.
func (h *fakeHost) dispatch(ev PointerEvent) {
	for _, l := range h.listeners {
		l(ev)
	}
}

func (h *fakeHost) lastFrame() Frame {
	if len(h.frames) == 0 {
		return Frame{}
	}
	return h.frames[len(h.frames)-1]
}

func at(x float64) Point { return Point{X: x, Y: x} }
