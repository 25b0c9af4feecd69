// Package config loads optional weft.toml project configuration.
//
// The file is discovered by walking upward from the document being
// tangled, so a project can pin its output root and expansion limits
// once at the repository top. Every field has a working default;
// missing files are not an error at call sites that use LoadForDir.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the project configuration file weft looks for.
const FileName = "weft.toml"

var (
	// ErrNotFound indicates no weft.toml exists on the search path.
	ErrNotFound = errors.New("config file not found")

	// ErrInvalidField indicates a field with an out-of-range value.
	ErrInvalidField = errors.New("invalid config field")
)

// Config is the weft.toml schema.
type Config struct {
	// Root is the directory relative destination paths resolve
	// against. Relative values are resolved against the config
	// file's own directory. Empty means the process working
	// directory.
	Root string `toml:"root"`

	// MaxDepth bounds reference expansion nesting. Zero selects the
	// built-in default.
	MaxDepth int `toml:"max_depth"`

	// LogFile, when set, receives one line per run event.
	LogFile string `toml:"log_file"`

	// Color controls styled output: "auto", "always", or "never".
	Color string `toml:"color"`
}

// Default returns the configuration used when no weft.toml exists.
func Default() *Config {
	return &Config{Color: "auto"}
}

// Load reads and validates one weft.toml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// Anchor a relative root to the config file, not the cwd.
	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must be >= 0", ErrInvalidField)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color must be auto, always, or never", ErrInvalidField)
	}
	return nil
}

// Discover walks upward from dir looking for weft.toml and returns
// its path, or ErrNotFound.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// LoadForDir discovers and loads the configuration governing dir,
// falling back to defaults when none exists.
func LoadForDir(dir string) (*Config, error) {
	path, err := Discover(dir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}
