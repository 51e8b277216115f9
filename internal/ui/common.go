// Package ui contains the fyne widgets built on the slider engine and the
// small helpers they share.
package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/edward-ap/knotslider/internal/slider"
)

// tracef logs when slider trace logging is enabled.
func tracef(format string, args ...any) {
	if !slider.TraceLoggingEnabled() {
		return
	}
	log.Printf("ui: "+format, args...)
}

type runOnMainDriver interface {
	RunOnMain(func())
}

type callOnMainDriver interface {
	CallOnMain(func())
}

// CallOnMain runs f on the UI thread when the driver exposes a way to do so
// and inline otherwise. Slider frames arrive from timer goroutines and go
// through here.
func CallOnMain(f func()) {
	if f == nil {
		return
	}
	app := fyne.CurrentApp()
	if app == nil {
		f()
		return
	}
	drv := app.Driver()
	if drv == nil {
		f()
		return
	}
	if r, ok := drv.(runOnMainDriver); ok {
		r.RunOnMain(f)
		return
	}
	if c, ok := drv.(callOnMainDriver); ok {
		c.CallOnMain(f)
		return
	}
	f()
}

// currentScale is the app's UI scale, or 1 without a running app.
func currentScale() float64 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	set := app.Settings()
	if set == nil {
		return 1
	}
	if sc := set.Scale(); sc > 0 {
		return float64(sc)
	}
	return 1
}

// decimalsForStep returns how many fraction digits are needed to show values
// on a step grid, capped at 4.
func decimalsForStep(step float64) int {
	if step <= 0 {
		return 0
	}
	for d := 0; d < 4; d++ {
		scaled := step
		for i := 0; i < d; i++ {
			scaled *= 10
		}
		if diff := scaled - float64(int64(scaled+0.5)); diff < 1e-9 && diff > -1e-9 {
			return d
		}
	}
	return 4
}
