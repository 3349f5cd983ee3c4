package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	// BackendFile stores the sim as a JSON document on disk.
	BackendFile = "file"
	// BackendSQLite stores named sims in a SQLite database.
	BackendSQLite = "sqlite"
)

// StoreConfig selects where the sim is loaded from and saved to.
type StoreConfig struct {
	Backend string `yaml:"backend"`
	// Path is the document or database path. Empty picks a per-backend default.
	Path string `yaml:"path"`
	// Name selects the sim inside a SQLite database.
	Name string `yaml:"name"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// EditorConfig controls the editor window.
type EditorConfig struct {
	Width int `yaml:"width"`
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// Config is the full application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Editor EditorConfig `yaml:"editor"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Store:  StoreConfig{Backend: BackendFile, Name: "default"},
		Log:    LogConfig{Level: "info"},
		Editor: EditorConfig{Width: 320, Scale: 2, TPS: 60},
	}
}

// StorePath returns the configured path or the backend's default.
func (s StoreConfig) StorePath() string {
	if s.Path != "" {
		return s.Path
	}
	if s.Backend == BackendSQLite {
		return "blockca.db"
	}
	return "blockca.json"
}

// Load reads a YAML file on top of the defaults. A missing file is not an
// error when optional is set.
func Load(path string, optional bool) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return c.normalized(), nil
}

// FromMap applies dotted key=value overrides. Unknown keys and unparsable
// values are ignored.
func FromMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["store.backend"]; ok && v != "" {
		c.Store.Backend = strings.ToLower(v)
	}
	if v, ok := cfg["store.path"]; ok {
		c.Store.Path = v
	}
	if v, ok := cfg["store.name"]; ok && v != "" {
		c.Store.Name = v
	}
	if v, ok := cfg["log.level"]; ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := cfg["log.development"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Log.Development = parsed
		}
	}
	if v, ok := cfg["editor.width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Editor.Width = parsed
		}
	}
	if v, ok := cfg["editor.scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Editor.Scale = parsed
		}
	}
	if v, ok := cfg["editor.tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Editor.TPS = parsed
		}
	}
	return c.normalized()
}

// ParseOverrides splits key=value pairs; malformed entries are skipped.
func ParseOverrides(kvs []string) map[string]string {
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Validate reports settings no component can work with.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == BackendSQLite && c.Store.Name == "" {
		return errors.New("sqlite store needs a sim name")
	}
	return nil
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Store.Backend == "" {
		c.Store.Backend = d.Store.Backend
	}
	if c.Store.Name == "" {
		c.Store.Name = d.Store.Name
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Editor.Width <= 0 {
		c.Editor.Width = d.Editor.Width
	}
	if c.Editor.Scale <= 0 {
		c.Editor.Scale = d.Editor.Scale
	}
	if c.Editor.TPS <= 0 {
		c.Editor.TPS = d.Editor.TPS
	}
	return c
}

// Flags holds the command-line values that override the config file.
type Flags struct {
	Path      string
	Overrides []string
	Backend   string
	Store     string
	Name      string
	Verbose   bool
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.StringVar(&f.Path, "config", "blockca.yaml", "config file (missing is fine)")
	fs.StringArrayVar(&f.Overrides, "set", nil, "config override in key=value form (repeatable)")
	fs.StringVar(&f.Backend, "backend", d.Store.Backend, "store backend: file or sqlite")
	fs.StringVar(&f.Store, "store", "", "store path (default blockca.json / blockca.db)")
	fs.StringVar(&f.Name, "name", d.Store.Name, "sim name inside a sqlite store")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "debug logging")
}

// Resolve layers defaults, the config file, --set overrides and explicitly
// set flags, in that order.
func (f *Flags) Resolve(fs *pflag.FlagSet) (Config, error) {
	optional := !fs.Changed("config")
	c, err := Load(f.Path, optional)
	if err != nil {
		return c, err
	}
	c = FromMap(c, ParseOverrides(f.Overrides))
	if fs.Changed("backend") {
		c.Store.Backend = strings.ToLower(f.Backend)
	}
	if fs.Changed("store") {
		c.Store.Path = f.Store
	}
	if fs.Changed("name") {
		c.Store.Name = f.Name
	}
	if f.Verbose {
		c.Log.Level = "debug"
	}
	return c, c.Validate()
}
