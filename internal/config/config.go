// Package config loads project settings from carbide.toml or carbide.yaml.
//
// Every key is optional. Values absent from the file keep their defaults,
// and command line flags are applied over the result by the caller.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"carbide/internal/parser"
	"carbide/internal/report"
)

type Config struct {
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Report ReportConfig `toml:"report" yaml:"report"`
	Log    LogConfig    `toml:"log" yaml:"log"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

type ParserConfig struct {
	MaxDepth      int `toml:"max_depth" yaml:"max_depth"`
	MaxParameters int `toml:"max_parameters" yaml:"max_parameters"`
	MaxArguments  int `toml:"max_arguments" yaml:"max_arguments"`
}

type ReportConfig struct {
	Format       string `toml:"format" yaml:"format"`
	Color        string `toml:"color" yaml:"color"`
	ContextLines int    `toml:"context_lines" yaml:"context_lines"`
}

type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// FileNames lists the names Discover looks for, in order of preference.
var FileNames = []string{"carbide.toml", "carbide.yaml", "carbide.yml"}

func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxDepth:      parser.DefaultMaxDepth,
			MaxParameters: parser.DefaultMaxParameters,
			MaxArguments:  parser.DefaultMaxArguments,
		},
		Report: ReportConfig{
			Format:       string(report.FormatText),
			Color:        ColorAuto,
			ContextLines: 1,
		},
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .toml, or .yaml/.yml.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(content, cfg)
	case ".yaml", ".yml":
		err = decodeYAML(content, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q in %s", ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(content []byte, cfg *Config) error {
	md, err := toml.Decode(string(content), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(content []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Discover searches dir and its parents for a configuration file and
// returns its path, or "" when there is none.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadOrDiscover loads path when it is set, otherwise the file found by
// Discover from dir, otherwise the defaults.
func LoadOrDiscover(path, dir string) (*Config, error) {
	if path == "" {
		found, err := Discover(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return Default(), nil
		}
		path = found
	}
	return Load(path)
}

func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 1 {
		return fmt.Errorf("parser.max_depth must be positive, got %d", c.Parser.MaxDepth)
	}
	if c.Parser.MaxParameters < 1 {
		return fmt.Errorf("parser.max_parameters must be positive, got %d", c.Parser.MaxParameters)
	}
	if c.Parser.MaxArguments < 1 {
		return fmt.Errorf("parser.max_arguments must be positive, got %d", c.Parser.MaxArguments)
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}
	switch c.Report.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("report.color must be auto, always or never, got %q", c.Report.Color)
	}
	if c.Report.ContextLines < 0 {
		return fmt.Errorf("report.context_lines must not be negative, got %d", c.Report.ContextLines)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	return nil
}

func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		MaxDepth:      c.Parser.MaxDepth,
		MaxParameters: c.Parser.MaxParameters,
		MaxArguments:  c.Parser.MaxArguments,
	}
}

// ReportOptions resolves the color mode; terminal reports whether output
// goes to a terminal, which decides "auto".
func (c *Config) ReportOptions(terminal bool) report.Options {
	useColor := terminal
	switch c.Report.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	}
	return report.Options{Color: useColor, ContextLines: c.Report.ContextLines}
}

// LogFile returns the configured log file, or nil for stderr.
func (c *Config) LogFile() *string {
	if c.Log.File == "" {
		return nil
	}
	return &c.Log.File
}
