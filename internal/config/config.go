// Package config defines the knotslider demo configuration format and helpers
// for loading, saving and watching it on disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edward-ap/knotslider/internal/slider"
)

const (
	// AppID is the stable application identifier used for config storage.
	AppID = "io.github.edward-ap.knotslider"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "KnotSlider"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultWidth is the preferred window width when no persisted value exists.
	DefaultWidth = 640
	// DefaultHeight is the preferred window height.
	DefaultHeight = 420
	// MinWindowWidth keeps every bank slider wide enough to grab.
	MinWindowWidth = 480
	// DefaultKnotScale is the knot diameter relative to the inline icon size.
	DefaultKnotScale = 0.5
	// DefaultBankPreset is the preset selected on first launch.
	DefaultBankPreset = "Flat"
	// BankMin and BankMax bound every slider of the bank.
	BankMin = -12
	BankMax = 12
	// BankStep is the resolution of the bank sliders.
	BankStep = 0.5
)

// SliderSettings is the persisted form of a slider configuration.
type SliderSettings struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Step        float64 `json:"step"`
	Value       float64 `json:"value"`
	Snapping    bool    `json:"snapping,omitempty"`
	Vertical    bool    `json:"vertical,omitempty"`
	Disabled    bool    `json:"disabled,omitempty"`
	PaddingMode bool    `json:"paddingMode,omitempty"`
	PaddingStep float64 `json:"paddingStep,omitempty"`
}

// PresetData is a user preset stored in the config file.
type PresetData struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Config aggregates every user-facing preference persisted between sessions.
type Config struct {
	Master        SliderSettings `json:"master"`
	BankPreset    string         `json:"bankPreset"`
	BankValues    []float64      `json:"bankValues"`
	BankSnapping  bool           `json:"bankSnapping"`
	PresetsFile   string         `json:"presetsFile,omitempty"`
	CustomPresets []PresetData   `json:"customPresets,omitempty"`
	KnotScale     float32        `json:"knotScale"`
	TraceLog      bool           `json:"traceLog,omitempty"`
	WindowW       int            `json:"windowW"`
	WindowH       int            `json:"windowH"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from disk. A missing file yields defaults, which are
// also written back so users have something to edit.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path; see Load.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := newDefaultConfig()
			_ = cfg.SaveFile(path)
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the configuration to path.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Default returns the configuration used on first run.
func Default() *Config { return newDefaultConfig() }

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

// SliderConfig converts persisted settings into an engine config.
func (s SliderSettings) SliderConfig() slider.Config {
	return slider.Config{
		Min:         s.Min,
		Max:         s.Max,
		Step:        s.Step,
		Value:       s.Value,
		Snapping:    s.Snapping,
		Vertical:    s.Vertical,
		Inverted:    s.Vertical,
		Disabled:    s.Disabled,
		PaddingMode: s.PaddingMode,
		PaddingStep: s.PaddingStep,
	}
}

func defaultMaster() SliderSettings {
	return SliderSettings{Min: 0, Max: 100, Step: 5, Value: 50, Snapping: true, PaddingMode: true, PaddingStep: 10}
}

func newDefaultConfig() *Config {
	cfg := &Config{
		Master:       defaultMaster(),
		BankPreset:   DefaultBankPreset,
		BankSnapping: true,
		KnotScale:    DefaultKnotScale,
		WindowW:      DefaultWidth,
		WindowH:      DefaultHeight,
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes values after a load so the UI always
// receives sane inputs.
func (c *Config) applyRuntimeDefaults() {
	if err := c.Master.SliderConfig().Validate(); err != nil {
		c.Master = defaultMaster()
	}
	if c.Master.Value < c.Master.Min || c.Master.Value > c.Master.Max {
		c.Master.Value = c.Master.Min
	}
	if strings.TrimSpace(c.BankPreset) == "" {
		c.BankPreset = DefaultBankPreset
	}
	if c.BankValues == nil {
		c.BankValues = []float64{}
	}
	for i, v := range c.BankValues {
		if v < BankMin || v > BankMax {
			c.BankValues[i] = 0
		}
	}
	kept := c.CustomPresets[:0]
	for _, p := range c.CustomPresets {
		if strings.TrimSpace(p.Name) != "" {
			kept = append(kept, p)
		}
	}
	c.CustomPresets = kept
	if c.KnotScale <= 0 || c.KnotScale > 2 {
		c.KnotScale = DefaultKnotScale
	}
	if c.WindowW == 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowW < MinWindowWidth {
		c.WindowW = MinWindowWidth
	}
	if c.WindowH <= 0 {
		c.WindowH = DefaultHeight
	}
}
