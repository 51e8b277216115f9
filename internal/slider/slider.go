package slider

// Slider is a single range input bound to a Host. It is not safe for
// concurrent use: every method must be called from the host's UI thread.
type Slider struct {
	host      Host
	cfg       Config
	geom      Geometry
	sched     *Scheduler
	redraw    *FrameClient
	ownsSched bool

	value      float64
	knotOffset float64

	state         dragState
	dragVertical  bool
	unsubscribe   func()
	geometryStale bool
	destroyed     bool

	// only touched from render callbacks, which never overlap
	rendered     bool
	lastDisabled bool

	onChanged func(float64)
	onDragEnd func(float64)
}

// Option customizes a Slider at construction.
type Option func(*Slider)

// WithOnChanged registers the value-changed notification.
func WithOnChanged(fn func(float64)) Option {
	return func(s *Slider) { s.onChanged = fn }
}

// WithOnDragEnd registers the end-of-drag notification.
func WithOnDragEnd(fn func(float64)) Option {
	return func(s *Slider) { s.onDragEnd = fn }
}

// WithScheduler renders through a scheduler shared with other sliders. Each
// slider keeps its own pending frame, and Destroy leaves sched running.
func WithScheduler(sched *Scheduler) Option {
	return func(s *Slider) { s.sched, s.ownsSched = sched, false }
}

// WithFrameSource builds a private scheduler on top of source.
func WithFrameSource(source FrameSource) Option {
	return func(s *Slider) { s.sched, s.ownsSched = NewScheduler(source), true }
}

// SetOption tweaks a single setter call.
type SetOption func(*setOptions)

type setOptions struct {
	skipRedraw bool
}

// SkipRedraw applies a change without scheduling a render.
func SkipRedraw() SetOption {
	return func(o *setOptions) { o.skipRedraw = true }
}

func collect(opts []SetOption) setOptions {
	var o setOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// New creates a slider. Invalid config fields fall back to defaults. A nil
// host yields an inert slider whose methods are safe but do nothing.
func New(host Host, cfg Config, opts ...Option) *Slider {
	s := &Slider{cfg: cfg.sanitized()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.value = s.cfg.Value
	if host == nil {
		tracef("no host supplied; slider is inert")
		s.destroyed = true
		return s
	}
	s.host = host
	if s.sched == nil {
		s.sched, s.ownsSched = NewScheduler(nil), true
	}
	s.redraw = s.sched.Client()
	s.resolveGeometry()
	p := ValueToPosition(s.cfg.Value, s.geom, s.cfg)
	s.value, s.knotOffset = p.Value, p.KnotOffset
	s.requestRender()
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// KnotOffset returns the knot distance from the Min end of the track.
func (s *Slider) KnotOffset() float64 { return s.knotOffset }

// Config returns a copy of the effective configuration.
func (s *Slider) Config() Config {
	c := s.cfg
	c.Value = s.value
	return c
}

// Geometry returns the cached track geometry.
func (s *Slider) Geometry() Geometry { return s.geom }

// Dragging reports whether a drag session is open.
func (s *Slider) Dragging() bool { return s.state == stateDragging }

// SetOnChanged replaces the value-changed notification.
func (s *Slider) SetOnChanged(fn func(float64)) {
	if s.destroyed {
		return
	}
	s.onChanged = fn
}

// SetOnDragEnd replaces the end-of-drag notification.
func (s *Slider) SetOnDragEnd(fn func(float64)) {
	if s.destroyed {
		return
	}
	s.onDragEnd = fn
}

// SetValue moves the slider to the step nearest to v, clamped to the range,
// and notifies even when the value is unchanged. It returns the effective
// value.
func (s *Slider) SetValue(v float64, opts ...SetOption) float64 {
	if s.destroyed {
		return s.value
	}
	if !isFinite(v) {
		tracef("SetValue(%v) ignored: %v", v, ErrNotFinite)
		return s.value
	}
	s.apply(ValueToPosition(v, s.geom, s.cfg), collect(opts))
	return s.value
}

// SetMin changes the lower bound. Values above Max are ignored. It returns
// the effective minimum.
func (s *Slider) SetMin(v float64, opts ...SetOption) float64 {
	if s.destroyed {
		return s.cfg.Min
	}
	if !isFinite(v) || v > s.cfg.Max {
		tracef("SetMin(%v) ignored, max is %v", v, s.cfg.Max)
		return s.cfg.Min
	}
	s.cfg.Min = v
	s.reconfigure(collect(opts))
	return s.cfg.Min
}

// SetMax changes the upper bound. Values below Min are ignored. It returns
// the effective maximum.
func (s *Slider) SetMax(v float64, opts ...SetOption) float64 {
	if s.destroyed {
		return s.cfg.Max
	}
	if !isFinite(v) || v < s.cfg.Min {
		tracef("SetMax(%v) ignored, min is %v", v, s.cfg.Min)
		return s.cfg.Max
	}
	s.cfg.Max = v
	s.reconfigure(collect(opts))
	return s.cfg.Max
}

// SetStep changes the quantization step. Non-positive steps are ignored.
func (s *Slider) SetStep(v float64, opts ...SetOption) float64 {
	if s.destroyed {
		return s.cfg.Step
	}
	if !isFinite(v) || v <= 0 {
		tracef("SetStep(%v) ignored: %v", v, ErrInvalidStep)
		return s.cfg.Step
	}
	s.cfg.Step = v
	s.reconfigure(collect(opts))
	return s.cfg.Step
}

// SetPaddingStep changes the nudge applied by padding-mode taps.
func (s *Slider) SetPaddingStep(v float64) float64 {
	if s.destroyed {
		return s.cfg.paddingStep()
	}
	if !isFinite(v) || v <= 0 {
		tracef("SetPaddingStep(%v) ignored", v)
		return s.cfg.paddingStep()
	}
	s.cfg.PaddingStep = v
	return s.cfg.paddingStep()
}

// SetVertical switches the active axis.
func (s *Slider) SetVertical(vertical bool, opts ...SetOption) bool {
	if s.destroyed || s.cfg.Vertical == vertical {
		return s.cfg.Vertical
	}
	s.cfg.Vertical = vertical
	s.reconfigure(collect(opts))
	return s.cfg.Vertical
}

// SetInverted flips the direction in which values grow.
func (s *Slider) SetInverted(inverted bool, opts ...SetOption) bool {
	if s.destroyed || s.cfg.Inverted == inverted {
		return s.cfg.Inverted
	}
	s.cfg.Inverted = inverted
	s.reconfigure(collect(opts))
	return s.cfg.Inverted
}

// SetSnapping toggles whether the knot jumps between snap points.
func (s *Slider) SetSnapping(snapping bool, opts ...SetOption) bool {
	if s.destroyed || s.cfg.Snapping == snapping {
		return s.cfg.Snapping
	}
	s.cfg.Snapping = snapping
	s.reconfigure(collect(opts))
	return s.cfg.Snapping
}

// SetPaddingMode toggles tap-to-nudge on the bare track.
func (s *Slider) SetPaddingMode(enabled bool) bool {
	if s.destroyed {
		return s.cfg.PaddingMode
	}
	s.cfg.PaddingMode = enabled
	return s.cfg.PaddingMode
}

// SetDisabled toggles the disabled state. A drag already in progress stays
// open but ignores moves until it is released.
func (s *Slider) SetDisabled(disabled bool, opts ...SetOption) bool {
	if s.destroyed || s.cfg.Disabled == disabled {
		return s.cfg.Disabled
	}
	s.cfg.Disabled = disabled
	if !collect(opts).skipRedraw {
		s.requestRender()
	}
	return s.cfg.Disabled
}

// Relayout re-reads the host metrics, for instance after a resize or when
// the slider becomes visible. During a drag the update waits for release.
func (s *Slider) Relayout(opts ...SetOption) {
	if s.destroyed {
		return
	}
	s.reconfigure(collect(opts))
}

// Destroy detaches all listeners, neutralizes pending redraws and drops the
// host and callbacks. The slider is inert afterwards.
func (s *Slider) Destroy() {
	if s.destroyed {
		return
	}
	s.closeSession()
	s.destroyed = true
	if s.redraw != nil {
		s.redraw.Close()
	}
	if s.ownsSched && s.sched != nil {
		s.sched.Stop()
	}
	s.host = nil
	s.onChanged = nil
	s.onDragEnd = nil
	tracef("destroyed")
}

// reconfigure recomputes geometry after a settings change and re-clamps the
// value through the mapper.
func (s *Slider) reconfigure(o setOptions) {
	if s.state == stateDragging {
		s.geometryStale = true
	} else {
		s.resolveGeometry()
	}
	s.reclamp(ValueToPosition(s.value, s.geom, s.cfg), o)
}

func (s *Slider) resolveGeometry() {
	m := s.host.Metrics()
	track, knot := m.TrackWidth, m.KnotWidth
	if s.cfg.Vertical {
		track, knot = m.TrackHeight, m.KnotHeight
	}
	g, err := Resolve(track, knot, s.cfg.Step, s.cfg.Min, s.cfg.Max)
	if err != nil {
		tracef("geometry track=%v knot=%v: %v", track, knot, err)
	}
	g.OriginOffset = s.geom.OriginOffset
	s.geom = g
	s.geometryStale = false
}

// apply stores the position produced by an accepted pointer event or
// SetValue, schedules a render and always notifies.
func (s *Slider) apply(p Position, o setOptions) {
	s.store(p, o)
	s.notify()
}

// reclamp stores a position recomputed after a settings change and notifies
// only when the value moved.
func (s *Slider) reclamp(p Position, o setOptions) {
	changed := p.Value != s.value
	s.store(p, o)
	if changed {
		s.notify()
	}
}

func (s *Slider) store(p Position, o setOptions) {
	s.value, s.knotOffset = p.Value, p.KnotOffset
	if !o.skipRedraw {
		s.requestRender()
	}
}

func (s *Slider) notify() {
	if s.onChanged != nil {
		s.onChanged(s.value)
	}
}

func (s *Slider) frame() Frame {
	valuable := s.geom.Valuable()
	pos := s.knotOffset
	if s.cfg.Inverted {
		pos = valuable - s.knotOffset
	}
	return Frame{
		Value:        s.value,
		KnotOffset:   s.knotOffset,
		KnotPosition: pos,
		FillLength:   s.knotOffset + s.geom.KnotHalf(),
		Vertical:     s.cfg.Vertical,
		Inverted:     s.cfg.Inverted,
		Dragging:     s.state == stateDragging,
		Disabled:     s.cfg.Disabled,
	}
}

func (s *Slider) requestRender() {
	if s.host == nil || s.redraw == nil {
		return
	}
	f := s.frame()
	host := s.host
	s.redraw.Request(func() {
		f.DisabledChanged = !s.rendered || f.Disabled != s.lastDisabled
		s.rendered = true
		s.lastDisabled = f.Disabled
		host.Render(f)
	})
}
