package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SizeNameKnot is the theme size of the slider knot diameter.
const SizeNameKnot fyne.ThemeSizeName = "knotSlider.knot"

// knotTheme wraps a theme and adds a knot size derived from the inline icon
// size.
type knotTheme struct {
	fyne.Theme
	scale float32
}

func (t knotTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == SizeNameKnot {
		return t.Theme.Size(theme.SizeNameInlineIcon) * t.scale
	}
	return t.Theme.Size(n)
}

// UseKnotTheme installs a knot size of scale times the inline icon size on
// the current app. Non-positive scales are ignored.
func UseKnotTheme(scale float32) {
	if scale <= 0 {
		return
	}
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	base := app.Settings().Theme()
	if kt, ok := base.(knotTheme); ok {
		base = kt.Theme
	}
	app.Settings().SetTheme(knotTheme{Theme: base, scale: scale})
}
