package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"github.com/chewxy/math32"
)

const trackThickness float32 = 4

type knotRenderer struct {
	s     *KnotSlider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	knot  *canvas.Circle
	objs  []fyne.CanvasObject
}

func newKnotRenderer(s *KnotSlider) *knotRenderer {
	r := &knotRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		knot:  canvas.NewCircle(theme.ForegroundColor()),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.knot}
	return r
}

func (r *knotRenderer) Layout(sz fyne.Size) {
	f := r.s.currentFrame()
	knot := knotSize()
	along, across := sz.Width, sz.Height
	if f.Vertical {
		along, across = sz.Height, sz.Width
	}

	// track centred on the cross axis, full length on the main axis
	cross := math32.Round((across - trackThickness) / 2)
	fill := math32.Min(math32.Max(float32(f.FillLength), 0), along)
	fillStart := float32(0)
	if f.Inverted {
		fillStart = along - fill
	}
	knotPos := math32.Round(math32.Min(math32.Max(float32(f.KnotPosition), 0), math32.Max(along-knot, 0)))
	knotCross := math32.Round((across - knot) / 2)

	if f.Vertical {
		r.track.Move(fyne.NewPos(cross, 0))
		r.track.Resize(fyne.NewSize(trackThickness, along))
		r.fill.Move(fyne.NewPos(cross, fillStart))
		r.fill.Resize(fyne.NewSize(trackThickness, fill))
		r.knot.Move(fyne.NewPos(knotCross, knotPos))
	} else {
		r.track.Move(fyne.NewPos(0, cross))
		r.track.Resize(fyne.NewSize(along, trackThickness))
		r.fill.Move(fyne.NewPos(fillStart, cross))
		r.fill.Resize(fyne.NewSize(fill, trackThickness))
		r.knot.Move(fyne.NewPos(knotPos, knotCross))
	}
	r.knot.Resize(fyne.NewSize(knot, knot))
}

func (r *knotRenderer) MinSize() fyne.Size {
	knot := knotSize()
	long := 4 * theme.IconInlineSize()
	if r.s.Config().Vertical {
		return fyne.NewSize(math32.Max(knot, theme.IconInlineSize()), long)
	}
	return fyne.NewSize(long, math32.Max(knot, theme.IconInlineSize()))
}

func (r *knotRenderer) Refresh() {
	fillColor, knotColor := theme.PrimaryColor(), theme.ForegroundColor()
	if r.s.currentFrame().Disabled {
		fillColor, knotColor = theme.DisabledColor(), theme.DisabledColor()
	}
	r.track.FillColor = theme.ShadowColor()
	r.fill.FillColor = fillColor
	r.knot.FillColor = knotColor
	r.knot.StrokeColor = color.Transparent
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.knot)
}

func (r *knotRenderer) Destroy() {}

func (r *knotRenderer) Objects() []fyne.CanvasObject { return r.objs }
