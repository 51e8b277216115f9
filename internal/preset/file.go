package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrUnsupportedFormat is returned for preset files that are neither TOML
	// nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported preset file format")
	// ErrEmptyName is returned when a preset in a file has no name.
	ErrEmptyName = errors.New("preset has no name")
)

// presetFile is the on-disk layout:
//
//	[[preset]]
//	name = "Smile"
//	values = [6.0, 3.0, 0.0, -3.0, -3.0, 0.0, 3.0, 6.0]
type presetFile struct {
	Presets []Preset `toml:"preset" json:"presets"`
}

// LoadFile reads presets from a .toml or .json file.
func LoadFile(path string) ([]Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f presetFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(b, &f)
	case ".json":
		err = json.Unmarshal(b, &f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("preset parse error in %s: %w", path, err)
	}
	for i := range f.Presets {
		f.Presets[i].Name = strings.TrimSpace(f.Presets[i].Name)
		if f.Presets[i].Name == "" {
			return nil, fmt.Errorf("%s: preset %d: %w", path, i, ErrEmptyName)
		}
	}
	return f.Presets, nil
}

// SaveFile writes presets in the format named by the file extension.
func SaveFile(path string, presets []Preset) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		b, err = toml.Marshal(presetFile{Presets: presets})
	case ".json":
		b, err = json.MarshalIndent(presetFile{Presets: presets}, "", "  ")
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
