package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const axisLabelPad = 6

// AxisLabel is a caption placed along a vertical slider, reading bottom to
// top. The text is rasterized once per SetText.
type AxisLabel struct {
	text string
	img  *canvas.Image
}

// NewAxisLabel renders text rotated a quarter turn counter-clockwise.
func NewAxisLabel(text string) *AxisLabel {
	l := &AxisLabel{img: &canvas.Image{FillMode: canvas.ImageFillContain}}
	l.SetText(text)
	return l
}

// CanvasObject exposes the underlying image for layout containers.
func (l *AxisLabel) CanvasObject() fyne.CanvasObject { return l.img }

// Text returns the caption.
func (l *AxisLabel) Text() string { return l.text }

// SetText re-rasterizes the caption when it changes.
func (l *AxisLabel) SetText(text string) {
	if text == l.text && l.img.Image != nil {
		return
	}
	l.text = text
	face := captionFace()
	if closer, ok := face.(interface{ Close() error }); ok {
		defer closer.Close()
	}
	out := rotateCCW(rasterizeText(text, face, theme.ForegroundColor()))
	l.img.Image = out
	l.img.SetMinSize(fyne.NewSize(float32(out.Bounds().Dx()), float32(out.Bounds().Dy())))
	l.img.Refresh()
}

// rasterizeText draws text on a transparent image just large enough to hold
// it plus padding.
func rasterizeText(text string, face font.Face, col color.Color) *image.RGBA {
	d := &font.Drawer{Face: face}
	m := face.Metrics()
	w := d.MeasureString(text).Ceil() + axisLabelPad
	h := (m.Ascent + m.Descent).Ceil() + axisLabelPad
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = dst
	d.Src = image.NewUniform(col)
	d.Dot = fixed.P(axisLabelPad/2, m.Ascent.Ceil()+axisLabelPad/2)
	d.DrawString(text)
	return dst
}

// rotateCCW turns src a quarter turn counter-clockwise.
func rotateCCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(y, b.Dx()-1-x, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// captionFace loads the theme font at caption size, falling back to the
// built-in bitmap face.
func captionFace() font.Face {
	size := float64(theme.CaptionTextSize())
	if size <= 0 {
		size = 11
	}
	size *= currentScale()
	if res := theme.TextFont(); res != nil {
		if ttf, err := opentype.Parse(res.Content()); err == nil {
			face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
			if err == nil {
				return face
			}
		}
	}
	return basicfont.Face7x13
}
