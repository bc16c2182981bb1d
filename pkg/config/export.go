package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// presetFile is the on-disk YAML shape for exported presets.
type presetFile struct {
	Presets []RequestPreset `yaml:"presets"`
}

// ExportPresets writes the presets as YAML, suitable for sharing or
// re-importing on another machine.
func ExportPresets(w io.Writer, presets []RequestPreset) error {
	doc := presetFile{Presets: presets}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode presets: %w", err)
	}
	return enc.Close()
}

// ImportPresets reads presets from a YAML document produced by
// ExportPresets.
func ImportPresets(r io.Reader) ([]RequestPreset, error) {
	var doc presetFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode presets: %w", err)
	}
	return doc.Presets, nil
}
