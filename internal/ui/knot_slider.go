package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/knotslider/internal/slider"
)

// KnotSlider is a fyne range input driven by the slider engine. The widget is
// the engine's Host: it reports its own size and position, forwards drag
// gestures as pointer events and draws the frames the engine schedules.
type KnotSlider struct {
	widget.BaseWidget

	// OnChanged fires on every press, drag move, tap and SetValue, even when
	// the value stays on the same step.
	OnChanged func(float64)
	// OnDragEnd fires once when a drag is released or cancelled.
	OnDragEnd func(float64)

	engine *slider.Slider

	mu    sync.Mutex
	frame slider.Frame

	listeners map[int]func(slider.PointerEvent)
	nextID    int
	gesture   bool

	bound    binding.Float
	listener binding.DataListener
}

// NewKnotSlider creates a slider from cfg. Invalid fields fall back to the
// engine defaults.
func NewKnotSlider(cfg slider.Config) *KnotSlider {
	return newKnotSlider(cfg, nil)
}

// NewVerticalKnotSlider creates a vertical slider that grows from the bottom,
// the layout used by slider banks.
func NewVerticalKnotSlider(min, max, step float64) *KnotSlider {
	return NewKnotSlider(slider.Config{Min: min, Max: max, Step: step, Vertical: true, Inverted: true, Value: min})
}

func newKnotSlider(cfg slider.Config, frames slider.FrameSource) *KnotSlider {
	s := &KnotSlider{listeners: map[int]func(slider.PointerEvent){}}
	s.ExtendBaseWidget(s)
	opts := []slider.Option{
		slider.WithOnChanged(s.valueChanged),
		slider.WithOnDragEnd(s.dragEnded),
	}
	if frames != nil {
		opts = append(opts, slider.WithFrameSource(frames))
	}
	s.engine = slider.New(s, cfg, opts...)
	return s
}

// CreateRenderer implements fyne.Widget.
func (s *KnotSlider) CreateRenderer() fyne.WidgetRenderer {
	return newKnotRenderer(s)
}

// Value returns the current value.
func (s *KnotSlider) Value() float64 { return s.engine.Value() }

// Config returns the effective engine configuration.
func (s *KnotSlider) Config() slider.Config { return s.engine.Config() }

// SetValue moves the knot to the step nearest v and returns the effective value.
func (s *KnotSlider) SetValue(v float64) float64 { return s.engine.SetValue(v) }

// SetMin changes the lower bound and returns the effective one.
func (s *KnotSlider) SetMin(v float64) float64 { return s.engine.SetMin(v) }

// SetMax changes the upper bound and returns the effective one.
func (s *KnotSlider) SetMax(v float64) float64 { return s.engine.SetMax(v) }

// SetStep changes the step and returns the effective one.
func (s *KnotSlider) SetStep(v float64) float64 { return s.engine.SetStep(v) }

// SetSnapping toggles knot snapping.
func (s *KnotSlider) SetSnapping(on bool) bool { return s.engine.SetSnapping(on) }

// SetVertical switches orientation; vertical sliders grow from the bottom.
func (s *KnotSlider) SetVertical(on bool) bool {
	s.engine.SetInverted(on, slider.SkipRedraw())
	return s.engine.SetVertical(on)
}

// SetPaddingMode toggles tap-to-nudge; step <= 0 keeps the slider step.
func (s *KnotSlider) SetPaddingMode(on bool, step float64) bool {
	if step > 0 {
		s.engine.SetPaddingStep(step)
	}
	return s.engine.SetPaddingMode(on)
}

// Disable implements fyne.Disableable.
func (s *KnotSlider) Disable() { s.engine.SetDisabled(true) }

// Enable implements fyne.Disableable.
func (s *KnotSlider) Enable() { s.engine.SetDisabled(false) }

// Disabled implements fyne.Disableable.
func (s *KnotSlider) Disabled() bool { return s.engine.Config().Disabled }

// Dragging reports whether a drag session is open.
func (s *KnotSlider) Dragging() bool { return s.engine.Dragging() }

// Bind connects the slider to a float data source in both directions.
func (s *KnotSlider) Bind(data binding.Float) {
	s.Unbind()
	s.bound = data
	s.listener = binding.NewDataListener(func() {
		v, err := data.Get()
		if err != nil {
			tracef("bound value read failed: %v", err)
			return
		}
		s.engine.SetValue(v)
	})
	data.AddListener(s.listener)
}

// Unbind disconnects any data source set with Bind.
func (s *KnotSlider) Unbind() {
	if s.bound == nil {
		return
	}
	s.bound.RemoveListener(s.listener)
	s.bound = nil
	s.listener = nil
}

// Destroy releases the engine; the widget stops reacting afterwards.
func (s *KnotSlider) Destroy() {
	s.Unbind()
	s.engine.Destroy()
}

// Resize re-resolves the track geometry for the new size.
func (s *KnotSlider) Resize(size fyne.Size) {
	if size == s.Size() {
		return
	}
	s.BaseWidget.Resize(size)
	s.engine.Relayout()
}

// Show re-resolves the geometry in case the size changed while hidden.
func (s *KnotSlider) Show() {
	s.BaseWidget.Show()
	s.engine.Relayout()
}

// Hide cancels a gesture in progress.
func (s *KnotSlider) Hide() {
	s.cancelGesture()
	s.BaseWidget.Hide()
}

// Tapped treats a tap as a press immediately followed by a release.
func (s *KnotSlider) Tapped(e *fyne.PointEvent) {
	if e == nil {
		return
	}
	s.engine.HandlePointer(slider.PointerEvent{
		Position: toPoint(e.AbsolutePosition),
		Phase:    slider.PhaseDown,
		OnKnot:   s.hitsKnot(e.Position),
	})
	s.dispatch(slider.PointerEvent{Position: toPoint(e.AbsolutePosition), Phase: slider.PhaseUp})
}

// Dragged implements fyne.Draggable. The first event of a gesture is replayed
// as a press at the point where the drag started.
func (s *KnotSlider) Dragged(e *fyne.DragEvent) {
	if e == nil {
		return
	}
	if !s.gesture {
		s.gesture = true
		start := fyne.NewPos(e.Position.X-e.Dragged.DX, e.Position.Y-e.Dragged.DY)
		absStart := fyne.NewPos(e.AbsolutePosition.X-e.Dragged.DX, e.AbsolutePosition.Y-e.Dragged.DY)
		s.engine.HandlePointer(slider.PointerEvent{
			Position: toPoint(absStart),
			Phase:    slider.PhaseDown,
			OnKnot:   s.hitsKnot(start),
		})
	}
	s.dispatch(slider.PointerEvent{Position: toPoint(e.AbsolutePosition), Phase: slider.PhaseMove})
}

// DragEnd implements fyne.Draggable.
func (s *KnotSlider) DragEnd() {
	if !s.gesture {
		return
	}
	s.gesture = false
	s.dispatch(slider.PointerEvent{Phase: slider.PhaseUp})
}

// Scrolled nudges the value by one step per wheel notch.
func (s *KnotSlider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil || s.Disabled() {
		return
	}
	step := s.engine.Config().Step
	switch {
	case ev.Scrolled.DY > 0:
		s.engine.SetValue(s.engine.Value() + step)
	case ev.Scrolled.DY < 0:
		s.engine.SetValue(s.engine.Value() - step)
	}
}

// Metrics implements slider.Host.
func (s *KnotSlider) Metrics() slider.Metrics {
	size := s.Size()
	knot := float64(knotSize())
	return slider.Metrics{
		TrackWidth:  float64(size.Width),
		TrackHeight: float64(size.Height),
		KnotWidth:   knot,
		KnotHeight:  knot,
	}
}

// Origin implements slider.Host.
func (s *KnotSlider) Origin() slider.Point {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return slider.Point{}
	}
	return toPoint(app.Driver().AbsolutePositionForObject(s))
}

// Subscribe implements slider.Host.
func (s *KnotSlider) Subscribe(listener func(slider.PointerEvent)) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	return func() { delete(s.listeners, id) }
}

// Render implements slider.Host. It runs on the scheduler's goroutine and
// hands the frame over to the UI thread.
func (s *KnotSlider) Render(f slider.Frame) {
	CallOnMain(func() {
		s.mu.Lock()
		s.frame = f
		s.mu.Unlock()
		s.Refresh()
	})
}

func (s *KnotSlider) currentFrame() slider.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// listenerCount is the number of transient listeners currently attached.
func (s *KnotSlider) listenerCount() int { return len(s.listeners) }

func (s *KnotSlider) dispatch(ev slider.PointerEvent) {
	for _, l := range s.listeners {
		l(ev)
	}
}

func (s *KnotSlider) cancelGesture() {
	if !s.gesture && len(s.listeners) == 0 {
		return
	}
	s.gesture = false
	s.dispatch(slider.PointerEvent{Phase: slider.PhaseCancel})
}

func (s *KnotSlider) valueChanged(v float64) {
	if s.bound != nil {
		if err := s.bound.Set(v); err != nil {
			tracef("bound value write %v failed: %v", v, err)
		}
	}
	if s.OnChanged != nil {
		s.OnChanged(v)
	}
}

func (s *KnotSlider) dragEnded(v float64) {
	if s.OnDragEnd != nil {
		s.OnDragEnd(v)
	}
}

// hitsKnot reports whether a widget-local position falls on the knot.
func (s *KnotSlider) hitsKnot(p fyne.Position) bool {
	e := s.engine
	knot := float64(knotSize())
	pos := knotPosition(e.KnotOffset(), e.Geometry().Valuable(), e.Config().Inverted)
	along := float64(p.X)
	if e.Config().Vertical {
		along = float64(p.Y)
	}
	return along >= pos && along <= pos+knot
}

func knotPosition(offset, valuable float64, inverted bool) float64 {
	if inverted {
		return valuable - offset
	}
	return offset
}

// knotSize is the knot diameter, taken from the knot theme when installed.
func knotSize() float32 {
	if sz := theme.Size(SizeNameKnot); sz > 0 {
		return sz
	}
	return theme.IconInlineSize() / 2
}

func toPoint(p fyne.Position) slider.Point {
	return slider.Point{X: float64(p.X), Y: float64(p.Y)}
}
