package demoapp

import (
	"fmt"
	"strings"

	config "github.com/edward-ap/knotslider/internal/config"
	"github.com/edward-ap/knotslider/internal/preset"
)

// presetNameManual is shown once the user moves a bank slider by hand.
const presetNameManual = "Manual"

var bandLabels = [preset.BankSize]string{"Sub", "Bass", "Low", "Low mid", "Mid", "High mid", "Presence", "Air"}

func bandCaption(i int) string {
	if i >= 0 && i < len(bandLabels) {
		return bandLabels[i]
	}
	return fmt.Sprintf("Band %d", i+1)
}

func presetsFromConfig(cfg *config.Config) []preset.Preset {
	out := make([]preset.Preset, 0, len(cfg.CustomPresets))
	for _, d := range cfg.CustomPresets {
		p := preset.Preset{Name: d.Name, Values: make([]float64, len(d.Values))}
		copy(p.Values, d.Values)
		out = append(out, p)
	}
	return out
}

func upsertPresetData(list []config.PresetData, p preset.Preset) []config.PresetData {
	d := config.PresetData{Name: p.Name, Values: append([]float64(nil), p.Values...)}
	for i := range list {
		if strings.EqualFold(list[i].Name, p.Name) {
			list[i] = d
			return list
		}
	}
	return append(list, d)
}

func sanitizePresetName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
