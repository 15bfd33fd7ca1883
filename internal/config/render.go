package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/plrefresh/pkg/diff"
)

// Render encodes cfg in the given format.
func Render(cfg *Config, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// DiffFromDefaults renders cfg and the defaults as YAML and returns their
// unified diff, or "" when cfg changes nothing.
func DiffFromDefaults(cfg *Config, label string) (string, error) {
	want, err := Render(Default(), FormatYAML)
	if err != nil {
		return "", err
	}
	got, err := Render(cfg, FormatYAML)
	if err != nil {
		return "", err
	}
	return diff.Unified(want, got, "defaults", label), nil
}
