package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"compsim/internal/lang"
)

// Output describes the [output] section.
type Output struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Store describes the [store] section.
type Store struct {
	Dir string `toml:"dir"`
}

// Config is the decoded compsim.toml.
type Config struct {
	Language       string   `toml:"language"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Declared       []string `toml:"declared"`
	Output         Output   `toml:"output"`
	Store          Store    `toml:"store"`

	// Path of the file the values came from; empty for Default().
	Path string `toml:"-"`
	meta toml.MetaData
}

// ErrUnknownKeys reports keys compsim does not understand.
var ErrUnknownKeys = errors.New("unknown configuration keys")

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Output: Output{Format: "pretty", Color: "auto"},
		Store:  Store{Dir: filepath.Join(".compsim", "history")},
	}
}

// Load decodes path over Default(). Unknown keys and invalid values are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}
	cfg.Path = path
	cfg.meta = meta
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !filepath.IsAbs(cfg.Store.Dir) && meta.IsDefined("store", "dir") {
		cfg.Store.Dir = filepath.Join(filepath.Dir(path), cfg.Store.Dir)
	}
	return cfg, nil
}

// Discover loads the compsim.toml found from startDir upwards, or Default().
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// IsDefined reports whether the key was present in the file.
func (c *Config) IsDefined(key ...string) bool {
	if c == nil || c.Path == "" {
		return false
	}
	return c.meta.IsDefined(key...)
}

// LanguageValue returns the configured language, or lang.Invalid when unset.
func (c *Config) LanguageValue() (lang.Language, error) {
	if c == nil || c.Language == "" {
		return lang.Invalid, nil
	}
	return lang.Parse(c.Language)
}

func (c *Config) validate() error {
	if _, err := c.LanguageValue(); err != nil {
		return err
	}
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("max_diagnostics must be >= 0, got %d", c.MaxDiagnostics)
	}
	switch c.Output.Format {
	case "pretty", "json", "short", "tree":
	default:
		return fmt.Errorf("output.format must be one of pretty|json|short|tree, got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("output.color must be auto, on or off, got %q", c.Output.Color)
	}
	if strings.TrimSpace(c.Store.Dir) == "" {
		return errors.New("store.dir must not be empty")
	}
	return nil
}
