// Package preset holds named value sets for a bank of sliders, the built-in
// shapes and the loader for user preset files.
package preset

import "strings"

// BankSize is the number of sliders in the demo bank.
const BankSize = 8

// Preset is a named set of slider values ordered left to right.
type Preset struct {
	Name   string    `toml:"name" json:"name"`
	Values []float64 `toml:"values" json:"values"`
}

// Bank keeps the available presets together with the live slider values.
type Bank struct {
	Presets []Preset
	Current Preset
}

// Built-in shapes on the bank's -12..12 range.
var defaultPresets = []Preset{
	{Name: "Flat", Values: []float64{0, 0, 0, 0, 0, 0, 0, 0}},
	{Name: "Ramp", Values: []float64{-12, -9, -6, -3, 0, 3, 6, 9}},
	{Name: "Valley", Values: []float64{9, 6, 3, 0, 0, 3, 6, 9}},
	{Name: "Peak", Values: []float64{-9, -6, -3, 6, 6, -3, -6, -9}},
}

// NewBank creates a bank with the built-in presets, starting at Flat.
func NewBank() *Bank {
	presets := DefaultPresets()
	return &Bank{Presets: presets, Current: clonePreset(presets[0])}
}

// DefaultPresets returns a deep copy of the built-in presets.
func DefaultPresets() []Preset {
	out := make([]Preset, len(defaultPresets))
	for i, p := range defaultPresets {
		out[i] = clonePreset(p)
	}
	return out
}

// Find looks a preset up by name, ignoring case.
func (b *Bank) Find(name string) (Preset, bool) {
	return findIn(b.Presets, name)
}

// FindPresetByName looks up a built-in preset, ignoring case.
func FindPresetByName(name string) (Preset, bool) {
	return findIn(defaultPresets, name)
}

// Names lists preset names in bank order.
func (b *Bank) Names() []string {
	out := make([]string, len(b.Presets))
	for i, p := range b.Presets {
		out[i] = p.Name
	}
	return out
}

// Merge adds extra presets to the bank. An extra preset whose name matches an
// existing one replaces it in place.
func (b *Bank) Merge(extra []Preset) {
	for _, p := range extra {
		b.Presets = Upsert(b.Presets, p)
	}
}

// Upsert replaces the preset named like p, ignoring case, or appends p.
func Upsert(presets []Preset, p Preset) []Preset {
	for i := range presets {
		if strings.EqualFold(presets[i].Name, p.Name) {
			presets[i] = clonePreset(p)
			return presets
		}
	}
	return append(presets, clonePreset(p))
}

// SetValue records a single slider value in the current preset.
func (b *Bank) SetValue(index int, v float64) {
	if index < 0 {
		return
	}
	if index >= len(b.Current.Values) {
		grown := make([]float64, index+1)
		copy(grown, b.Current.Values)
		b.Current.Values = grown
	}
	b.Current.Values[index] = v
}

// Select makes the named preset current.
func (b *Bank) Select(name string) (Preset, bool) {
	p, ok := b.Find(name)
	if !ok {
		return Preset{}, false
	}
	b.Current = clonePreset(p)
	return clonePreset(p), true
}

// ApplyToValues writes p into values in place. Sliders beyond the preset's
// length are reset to zero.
func ApplyToValues(p Preset, values []float64) {
	for i := range values {
		v := 0.0
		if i < len(p.Values) {
			v = p.Values[i]
		}
		values[i] = v
	}
}

// ExtractFromValues builds an unnamed preset from slider values.
func ExtractFromValues(values []float64) Preset {
	out := Preset{Values: make([]float64, len(values))}
	copy(out.Values, values)
	return out
}

func findIn(presets []Preset, name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return clonePreset(p), true
		}
	}
	return Preset{}, false
}

func clonePreset(p Preset) Preset {
	clone := Preset{Name: p.Name, Values: make([]float64, len(p.Values))}
	copy(clone.Values, p.Values)
	return clone
}
