package ui

import (
	"strconv"
	"sync"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// ReadoutController shows a slider value in a label, formatted with as many
// decimals as the step needs. SetValue is safe to call from any goroutine.
type ReadoutController struct {
	mu       sync.Mutex
	bind     binding.String
	decimals int
	unit     string
	last     string
}

// NewReadoutController binds lbl to a string binding owned by the controller.
func NewReadoutController(lbl *widget.Label, step float64, unit string) *ReadoutController {
	b := binding.NewString()
	if lbl != nil {
		lbl.Bind(b)
	}
	return &ReadoutController{bind: b, decimals: decimalsForStep(step), unit: unit}
}

// SetStep adapts the number of decimals to a new step.
func (rc *ReadoutController) SetStep(step float64) {
	rc.mu.Lock()
	rc.decimals = decimalsForStep(step)
	rc.mu.Unlock()
}

// SetValue updates the label text; repeated values are not re-sent.
func (rc *ReadoutController) SetValue(v float64) {
	rc.mu.Lock()
	text := formatReadout(v, rc.decimals, rc.unit)
	if text == rc.last {
		rc.mu.Unlock()
		return
	}
	rc.last = text
	b := rc.bind
	rc.mu.Unlock()

	_ = b.Set(text)
}

// Text returns the last text sent to the label.
func (rc *ReadoutController) Text() string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.last
}

func formatReadout(v float64, decimals int, unit string) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	text := strconv.FormatFloat(v, 'f', decimals, 64)
	if unit != "" {
		text += " " + unit
	}
	return text
}
