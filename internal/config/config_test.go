package config

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestLoadDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	restore := overrideConfigEnv(tempDir)
	defer restore()

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	_ = os.Remove(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.Master != defaultMaster() {
		t.Errorf("Master = %+v, want %+v", cfg.Master, defaultMaster())
	}
	if cfg.BankPreset != DefaultBankPreset {
		t.Errorf("BankPreset = %q, want %q", cfg.BankPreset, DefaultBankPreset)
	}
	if !cfg.BankSnapping {
		t.Error("BankSnapping should default to true")
	}
	if cfg.KnotScale != DefaultKnotScale {
		t.Errorf("KnotScale = %v, want %v", cfg.KnotScale, DefaultKnotScale)
	}
	if cfg.WindowW != DefaultWidth || cfg.WindowH != DefaultHeight {
		t.Errorf("window = %dx%d, want %dx%d", cfg.WindowW, cfg.WindowH, DefaultWidth, DefaultHeight)
	}
	if cfg.BankValues == nil {
		t.Fatal("BankValues should be initialised")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, got error: %v", path, err)
	}
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), AppConfigName)
	raw := `{
  "master": {"min": 10, "max": 0, "step": 1, "value": 5},
  "bankPreset": "  ",
  "bankValues": [3, -40, 12.5, -12],
  "customPresets": [{"name": "", "values": [1]}, {"name": "Mine", "values": [2]}],
  "knotScale": 9,
  "windowW": 100
}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Master != defaultMaster() {
		t.Errorf("invalid master range should reset, got %+v", cfg.Master)
	}
	if cfg.BankPreset != DefaultBankPreset {
		t.Errorf("BankPreset = %q", cfg.BankPreset)
	}
	want := []float64{3, 0, 0, -12}
	for i, v := range want {
		if cfg.BankValues[i] != v {
			t.Errorf("BankValues[%d] = %v, want %v", i, cfg.BankValues[i], v)
		}
	}
	if len(cfg.CustomPresets) != 1 || cfg.CustomPresets[0].Name != "Mine" {
		t.Errorf("CustomPresets = %+v", cfg.CustomPresets)
	}
	if cfg.KnotScale != DefaultKnotScale {
		t.Errorf("KnotScale = %v", cfg.KnotScale)
	}
	if cfg.WindowW != MinWindowWidth || cfg.WindowH != DefaultHeight {
		t.Errorf("window = %dx%d", cfg.WindowW, cfg.WindowH)
	}
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), AppConfigName)
	_ = os.WriteFile(path, []byte("{not json"), 0o644)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSliderSettingsConfig(t *testing.T) {
	s := SliderSettings{Min: -1, Max: 1, Step: 0.25, Value: 0.5, Vertical: true, PaddingMode: true, PaddingStep: 0.5}
	c := s.SliderConfig()
	if !c.Vertical || !c.Inverted {
		t.Fatal("vertical settings should grow from the bottom")
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if c.Min != -1 || c.Max != 1 || c.Step != 0.25 || c.Value != 0.5 || c.PaddingStep != 0.5 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), AppConfigName)
	cfg := newDefaultConfig()
	if err := cfg.SaveFile(path); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloaded := make(chan *Config, 4)
	if err := Watch(ctx, path, func(c *Config) { reloaded <- c }); err != nil {
		t.Fatalf("Watch error: %v", err)
	}

	cfg.BankPreset = "Valley"
	if err := cfg.SaveFile(path); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-reloaded:
			if c.BankPreset == "Valley" {
				return
			}
		case <-deadline:
			t.Fatal("config change was not observed")
		}
	}
}

func overrideConfigEnv(tempDir string) func() {
	originals := map[string]string{
		"APPDATA":         os.Getenv("APPDATA"),
		"LOCALAPPDATA":    os.Getenv("LOCALAPPDATA"),
		"USERPROFILE":     os.Getenv("USERPROFILE"),
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"HOME":            os.Getenv("HOME"),
	}

	if runtime.GOOS == "windows" {
		os.Setenv("APPDATA", tempDir)
		os.Setenv("LOCALAPPDATA", tempDir)
		os.Setenv("USERPROFILE", tempDir)
	} else {
		xdg := filepath.Join(tempDir, "xdg")
		_ = os.MkdirAll(xdg, 0o755)
		os.Setenv("XDG_CONFIG_HOME", xdg)
		os.Setenv("HOME", tempDir)
	}

	return func() {
		for k, v := range originals {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}
}
