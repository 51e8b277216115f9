package demoapp

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	config "github.com/edward-ap/knotslider/internal/config"
	"github.com/edward-ap/knotslider/internal/preset"
)

func newTestApp(t *testing.T, cfg *config.Config, opts Options) *App {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	t.Setenv("APPDATA", dir)
	fa := test.NewApp()
	t.Cleanup(fa.Quit)
	a := newApp(fa, cfg, opts)
	t.Cleanup(func() {
		a.master.Destroy()
		for _, s := range a.bankSliders {
			s.Destroy()
		}
	})
	return a
}

func bankValues(a *App) []float64 {
	out := make([]float64, len(a.bankSliders))
	for i, s := range a.bankSliders {
		out[i] = s.Value()
	}
	return out
}

func equalValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewAppRestoresPersistedBank(t *testing.T) {
	cfg := config.Default()
	cfg.BankPreset = presetNameManual
	cfg.BankValues = []float64{1, 2, 3, -4.5}

	a := newTestApp(t, cfg, Options{})

	want := []float64{1, 2, 3, -4.5, 0, 0, 0, 0}
	if got := bankValues(a); !equalValues(got, want) {
		t.Fatalf("bank values = %v, want %v", got, want)
	}
	if a.presetSelect.Selected != presetNameManual {
		t.Fatalf("selected = %q, want %q", a.presetSelect.Selected, presetNameManual)
	}
	if got := a.master.Value(); got != cfg.Master.Value {
		t.Fatalf("master = %v, want %v", got, cfg.Master.Value)
	}
}

func TestApplyPresetMovesBank(t *testing.T) {
	a := newTestApp(t, config.Default(), Options{})

	a.presetSelect.SetSelected("Ramp")

	ramp, _ := preset.FindPresetByName("Ramp")
	if got := bankValues(a); !equalValues(got, ramp.Values) {
		t.Fatalf("bank values = %v, want %v", got, ramp.Values)
	}
	if a.config.BankPreset != "Ramp" {
		t.Fatalf("config preset = %q, want Ramp", a.config.BankPreset)
	}
	if !equalValues(a.config.BankValues, ramp.Values) {
		t.Fatalf("config values = %v, want %v", a.config.BankValues, ramp.Values)
	}
}

func TestManualEditSwitchesToManual(t *testing.T) {
	a := newTestApp(t, config.Default(), Options{})

	a.bankSliders[2].SetValue(5)

	if a.config.BankPreset != presetNameManual {
		t.Fatalf("config preset = %q, want %q", a.config.BankPreset, presetNameManual)
	}
	if got := a.config.BankValues[2]; got != 5 {
		t.Fatalf("config value = %v, want 5", got)
	}
	if a.presetSelect.Selected != presetNameManual {
		t.Fatalf("selected = %q, want %q", a.presetSelect.Selected, presetNameManual)
	}
}

func TestPresetsFileIsMerged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	data := `
[[preset]]
name = "Smile"
values = [6.0, 3.0, 0.0, -3.0, -3.0, 0.0, 3.0, 6.0]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.CustomPresets = []config.PresetData{{Name: "Mine", Values: []float64{1}}}

	a := newTestApp(t, cfg, Options{PresetsFile: path})

	for _, name := range []string{"Smile", "Mine"} {
		if _, ok := a.bank.Find(name); !ok {
			t.Fatalf("preset %q missing from %v", name, a.bank.Names())
		}
	}
	a.presetSelect.SetSelected("Smile")
	if got := a.bankSliders[0].Value(); got != 6 {
		t.Fatalf("first band = %v, want 6", got)
	}
}

func TestSavePresetPersists(t *testing.T) {
	a := newTestApp(t, config.Default(), Options{})
	a.bankSliders[0].SetValue(-2)

	if !a.savePreset("  my   shape ") {
		t.Fatal("savePreset rejected a valid name")
	}
	if a.savePreset(presetNameManual) {
		t.Fatal("savePreset accepted the manual placeholder name")
	}
	p, ok := a.bank.Find("my shape")
	if !ok || p.Values[0] != -2 {
		t.Fatalf("saved preset = %+v, %v", p, ok)
	}
	loaded, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.CustomPresets) != 1 || loaded.CustomPresets[0].Name != "my shape" {
		t.Fatalf("persisted presets = %+v", loaded.CustomPresets)
	}
}

func TestSavePresetExportsToPresetsFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "presets.toml")
	if err := preset.SaveFile(existing, []preset.Preset{{Name: "Smile", Values: []float64{6, 3}}}); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "new", "presets.json")

	tests := []struct {
		name string
		path string
	}{
		{name: "existing toml", path: existing},
		{name: "new json", path: missing},
	}
	for _, tt := range tests {
		path := tt.path
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, config.Default(), Options{PresetsFile: path})
			a.bankSliders[1].SetValue(4.5)
			if !a.savePreset("Export") {
				t.Fatal("savePreset rejected a valid name")
			}

			got, err := preset.LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			names := map[string]preset.Preset{}
			for _, p := range got {
				names[p.Name] = p
			}
			if p, ok := names["Export"]; !ok || p.Values[1] != 4.5 {
				t.Fatalf("exported presets = %+v", got)
			}
			if path == existing {
				if _, ok := names["Smile"]; !ok {
					t.Fatalf("existing preset dropped: %+v", got)
				}
			}
		})
	}
}

func TestApplyExternalConfig(t *testing.T) {
	a := newTestApp(t, config.Default(), Options{})

	next := config.Default()
	next.Master.Min, next.Master.Max, next.Master.Step = 200, 300, 10
	next.Master.Value = 250
	next.Master.Disabled = true
	next.BankSnapping = false

	a.applyExternalConfig(next)

	if got := a.master.Value(); got != 250 {
		t.Fatalf("master = %v, want 250", got)
	}
	if c := a.master.Config(); c.Min != 200 || c.Max != 300 || c.Step != 10 {
		t.Fatalf("master range = %v..%v step %v", c.Min, c.Max, c.Step)
	}
	if !a.master.Disabled() || !a.config.Master.Disabled {
		t.Fatal("master should be disabled")
	}
	if a.config.BankSnapping {
		t.Fatal("bank snapping should follow the file")
	}
}

func TestUpsertPresetData(t *testing.T) {
	list := []config.PresetData{{Name: "A", Values: []float64{1}}}
	list = upsertPresetData(list, preset.Preset{Name: "a", Values: []float64{2}})
	list = upsertPresetData(list, preset.Preset{Name: "B", Values: []float64{3}})
	if len(list) != 2 || list[0].Values[0] != 2 || list[1].Name != "B" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestBandCaption(t *testing.T) {
	if got := bandCaption(0); got != "Sub" {
		t.Fatalf("bandCaption(0) = %q", got)
	}
	if got := bandCaption(9); got != "Band 10" {
		t.Fatalf("bandCaption(9) = %q", got)
	}
}
