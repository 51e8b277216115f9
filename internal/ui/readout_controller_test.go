package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestDecimalsForStep(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{step: 1, want: 0},
		{step: 10, want: 0},
		{step: 0.5, want: 1},
		{step: 2.5, want: 1},
		{step: 0.1, want: 1},
		{step: 0.25, want: 2},
		{step: 0.001, want: 3},
		{step: 1.0 / 3, want: 4},
		{step: 0, want: 0},
		{step: -1, want: 0},
	}
	for _, tt := range tests {
		if got := decimalsForStep(tt.step); got != tt.want {
			t.Errorf("decimalsForStep(%v) = %d, want %d", tt.step, got, tt.want)
		}
	}
}

func TestFormatReadout(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		unit     string
		want     string
	}{
		{name: "integer", value: 40, decimals: 0, want: "40"},
		{name: "with unit", value: -6.5, decimals: 1, unit: "dB", want: "-6.5 dB"},
		{name: "negative zero", value: -0.0, decimals: 1, want: "0.0"},
		{name: "float noise trimmed", value: 0.30000000000000004, decimals: 1, want: "0.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatReadout(tt.value, tt.decimals, tt.unit); got != tt.want {
				t.Fatalf("formatReadout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadoutControllerUpdatesLabel(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	lbl := widget.NewLabel("")
	rc := NewReadoutController(lbl, 0.5, "dB")
	rc.SetValue(3)
	if got := rc.Text(); got != "3.0 dB" {
		t.Fatalf("Text() = %q, want %q", got, "3.0 dB")
	}
	waitFor(t, "label text", func() bool { return lbl.Text == "3.0 dB" })

	rc.SetStep(1)
	rc.SetValue(3)
	if got := rc.Text(); got != "3 dB" {
		t.Fatalf("Text() after SetStep = %q, want %q", got, "3 dB")
	}
}
