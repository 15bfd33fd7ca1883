package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	plerrors "github.com/alexisbeaulieu97/plrefresh/pkg/errors"
)

// Format names a configuration encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", plerrors.ErrUnsupportedFormat
}

// Dir is the per-user configuration directory, honouring XDG_CONFIG_HOME.
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "plrefresh"), nil
}

// Discover returns the first of config.yaml, config.yml and config.toml that
// exists in Dir, or "" when there is none.
func Discover() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads path on top of the defaults and validates the result. An empty
// path loads the discovered per-user file, or the defaults when none exists.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Discover()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, plerrors.NewParseError(path, "", 0, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, plerrors.NewParseError(path, string(format), 0, err)
	}
	if err := Decode(data, format, cfg); err != nil {
		return nil, withPath(err, path)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode merges data onto cfg. Unknown keys are rejected.
func Decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return plerrors.NewParseError("", string(format), yamlLine(err), err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return plerrors.NewParseError("", string(format), tomlLine(err), err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return plerrors.NewParseError("", string(format), 0,
				fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	default:
		return plerrors.NewParseError("", string(format), 0, plerrors.ErrUnsupportedFormat)
	}
	return nil
}

// Save writes cfg to path in the format its extension names.
func Save(cfg *Config, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Render(cfg, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func withPath(err error, path string) error {
	var parseErr *plerrors.ParseError
	if errors.As(err, &parseErr) && parseErr.Path == "" {
		parseErr.Path = path
	}
	return err
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var parseErr toml.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Position.Line
	}
	return 0
}
