// Package slider implements the engine behind a draggable range input: the
// geometry resolver, the value mapper, the pointer state machine and the
// redraw scheduler. It has no knowledge of any toolkit; hosts plug in through
// the Host interface.
package slider

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMin is used when no valid minimum is supplied.
	DefaultMin = 0
	// DefaultMax is used when no valid maximum is supplied.
	DefaultMax = 100
	// DefaultStep is used when no valid step is supplied.
	DefaultStep = 1
)

var (
	// ErrInvalidStep reports a step that is zero or negative.
	ErrInvalidStep = errors.New("step must be greater than zero")
	// ErrInvalidRange reports a maximum below the minimum.
	ErrInvalidRange = errors.New("max must not be below min")
	// ErrNotFinite reports a NaN or infinite number.
	ErrNotFinite = errors.New("value is not a finite number")
)

// Config holds the user-facing settings of a slider. A Config is copied into
// every Slider, so instances never share settings.
type Config struct {
	Min      float64
	Max      float64
	Step     float64
	Snapping bool
	Vertical bool
	// Inverted measures offsets from the far end of the track, so a vertical
	// slider grows from the bottom.
	Inverted bool
	Disabled bool
	// PaddingMode turns taps on the track (not on the knot) into a nudge of
	// PaddingStep instead of a jump to the tapped position.
	PaddingMode bool
	PaddingStep float64
	// Value is the initial value; it is clamped and quantized on construction.
	Value float64
}

// DefaultConfig returns the 0..100 range with a step of 1.
func DefaultConfig() Config {
	return Config{Min: DefaultMin, Max: DefaultMax, Step: DefaultStep}
}

// Validate reports the first invariant the config breaks.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{{"min", c.Min}, {"max", c.Max}, {"step", c.Step}, {"value", c.Value}}
	for _, f := range fields {
		if !isFinite(f.v) {
			return fmt.Errorf("%s: %w", f.name, ErrNotFinite)
		}
	}
	if c.PaddingMode && !isFinite(c.PaddingStep) {
		return fmt.Errorf("padding step: %w", ErrNotFinite)
	}
	if c.Step <= 0 {
		return fmt.Errorf("step %v: %w", c.Step, ErrInvalidStep)
	}
	if c.Max < c.Min {
		return fmt.Errorf("min %v, max %v: %w", c.Min, c.Max, ErrInvalidRange)
	}
	return nil
}

// sanitized replaces every invalid field with its default so construction
// never fails.
func (c Config) sanitized() Config {
	if err := c.Validate(); err != nil {
		tracef("config rejected, falling back to defaults: %v", err)
	}
	if !isFinite(c.Min) {
		c.Min = DefaultMin
	}
	if !isFinite(c.Max) {
		c.Max = DefaultMax
	}
	if c.Max < c.Min {
		c.Min, c.Max = DefaultMin, DefaultMax
	}
	if !isFinite(c.Step) || c.Step <= 0 {
		c.Step = DefaultStep
	}
	if !isFinite(c.Value) {
		c.Value = c.Min
	}
	c.Value = clamp(c.Value, c.Min, c.Max)
	return c
}

// paddingStep returns the nudge applied by a padding-mode tap.
func (c Config) paddingStep() float64 {
	if !isFinite(c.PaddingStep) || c.PaddingStep <= 0 {
		return c.Step
	}
	return c.PaddingStep
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clamp constrains v to [lo, hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v >= lo {
		return v
	}
	return lo
}
