// Package config loads the robosearch run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/robosearch/internal/logging"
	"github.com/katalvlaran/robosearch/search"
	"github.com/katalvlaran/robosearch/state"
)

// Sentinel errors for configuration loading.
var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
	// ErrUnsupportedFormat indicates a file extension other than .yaml/.yml.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
	// ErrInvalidFormat indicates a document that could not be decoded.
	ErrInvalidFormat = errors.New("config: invalid format")
	// ErrValidationFailed indicates a decoded document with invalid values.
	ErrValidationFailed = errors.New("config: validation failed")
)

// Deepening holds the iterative-deepening bounds.
type Deepening struct {
	Start   int `yaml:"start"`
	Ceiling int `yaml:"ceiling"`
}

// Guided holds the guided-search evaluation mode.
type Guided struct {
	PerCandidate bool `yaml:"per_candidate"`
}

// Config is one search run.
type Config struct {
	// Map is the board file path (text or YAML map).
	Map string `yaml:"map"`

	// Strategy names the frontier selection rule (see search.Strategies).
	Strategy string `yaml:"strategy"`

	// Seed pins the portal random stream; nil leaves it clock-seeded.
	Seed *int64 `yaml:"seed"`

	// PortalProbability is the teleport chance of a portal.
	PortalProbability float64 `yaml:"portal_probability"`

	// MaxExpansions caps expansions; 0 disables the cap.
	MaxExpansions int `yaml:"max_expansions"`

	Deepening Deepening      `yaml:"deepening"`
	Guided    Guided         `yaml:"guided"`
	Log       logging.Config `yaml:"log"`
}

// Default returns breadth-first search with the standard bounds and logging.
func Default() *Config {
	return &Config{
		Strategy:          "bfs",
		PortalProbability: state.DefaultPortalProbability,
		Deepening: Deepening{
			Start:   search.DefaultStartBound,
			Ceiling: search.DefaultCeilingBound,
		},
		Log: logging.DefaultConfig(),
	}
}

// LoadFile loads a configuration file on top of Default.
func LoadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("config: access file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes YAML from r on top of Default and validates the result.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid value, wrapped in ErrValidationFailed.
func (c *Config) Validate() error {
	var errs []error
	if _, err := search.StrategyByName(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.PortalProbability < 0 || c.PortalProbability > 1 {
		errs = append(errs, fmt.Errorf("portal_probability %v outside [0, 1]", c.PortalProbability))
	}
	if c.MaxExpansions < 0 {
		errs = append(errs, fmt.Errorf("max_expansions cannot be negative (%d)", c.MaxExpansions))
	}
	if c.Deepening.Start < 1 || c.Deepening.Ceiling < c.Deepening.Start {
		errs = append(errs, fmt.Errorf("deepening bounds %d..%d invalid", c.Deepening.Start, c.Deepening.Ceiling))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log level %q unknown", c.Log.Level))
	}
	if !logging.ValidFormat(c.Log.Format) {
		errs = append(errs, fmt.Errorf("log format %q unknown", c.Log.Format))
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
}

// BuildStrategy returns the configured strategy with its bounds and mode applied.
func (c *Config) BuildStrategy() (search.Strategy, error) {
	s, err := search.StrategyByName(c.Strategy)
	if err != nil {
		return nil, err
	}
	switch v := s.(type) {
	case *search.IterativeDeepening:
		v.Start, v.Ceiling = c.Deepening.Start, c.Deepening.Ceiling
	case search.Guided:
		v.PerCandidate = c.Guided.PerCandidate
		s = v
	}

	return s, nil
}

// StateOptions returns the robot factory options.
func (c *Config) StateOptions() []state.Option {
	opts := []state.Option{state.WithPortalProbability(c.PortalProbability)}
	if c.Seed != nil {
		opts = append(opts, state.WithSeed(*c.Seed))
	}
	return opts
}
