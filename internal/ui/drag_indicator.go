package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
)

// IndicatorState is what a DragIndicator currently shows.
type IndicatorState int

const (
	IndicatorIdle IndicatorState = iota
	IndicatorDragging
	IndicatorDisabled
)

var indicatorIdleColor = color.NRGBA{0x80, 0x80, 0x80, 0xFF}

// DragIndicator is a small dot that lights up while a slider is being dragged
// and greys out when it is disabled.
type DragIndicator struct {
	wrap   *fyne.Container
	circle *canvas.Circle
	state  IndicatorState
}

// NewDragIndicator constructs an indicator with the given diameter.
func NewDragIndicator(diameter float32) *DragIndicator {
	c := canvas.NewCircle(indicatorIdleColor)
	c.StrokeColor = color.Transparent
	inner := container.New(layout.NewGridWrapLayout(fyne.NewSize(diameter, diameter)), c)
	return &DragIndicator{wrap: container.NewCenter(inner), circle: c}
}

// CanvasObject returns the fyne object suitable for embedding in layouts.
func (d *DragIndicator) CanvasObject() fyne.CanvasObject { return d.wrap }

// State returns the state last applied.
func (d *DragIndicator) State() IndicatorState { return d.state }

// Track follows a slider: it lights while s is dragging and dims when s is
// disabled. Existing OnChanged/OnDragEnd callbacks are chained.
func (d *DragIndicator) Track(s *KnotSlider) {
	prevChanged, prevEnd := s.OnChanged, s.OnDragEnd
	s.OnChanged = func(v float64) {
		d.Update(s)
		if prevChanged != nil {
			prevChanged(v)
		}
	}
	s.OnDragEnd = func(v float64) {
		d.Update(s)
		if prevEnd != nil {
			prevEnd(v)
		}
	}
	d.Update(s)
}

// Update re-reads the slider state.
func (d *DragIndicator) Update(s *KnotSlider) {
	switch {
	case s.Disabled():
		d.SetState(IndicatorDisabled)
	case s.Dragging():
		d.SetState(IndicatorDragging)
	default:
		d.SetState(IndicatorIdle)
	}
}

// SetState recolors the dot on the UI thread.
func (d *DragIndicator) SetState(st IndicatorState) {
	if st == d.state {
		return
	}
	d.state = st
	col := indicatorColor(st)
	CallOnMain(func() {
		d.circle.FillColor = col
		d.circle.Refresh()
	})
}

func indicatorColor(st IndicatorState) color.Color {
	switch st {
	case IndicatorDragging:
		return theme.PrimaryColor()
	case IndicatorDisabled:
		return theme.DisabledColor()
	default:
		return indicatorIdleColor
	}
}
