// Package config loads and validates the YAML configuration shared by the
// giantgraph CLI and HTTP server.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full runtime configuration.
type Config struct {
	// Nodes is N, the fixed number of graph nodes (a 10×10 grid by default).
	Nodes int `yaml:"nodes" validate:"gte=0,lte=100000"`
	// Seed drives every random choice; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
	// Probability is the p used by G(n,p) generation.
	Probability float64 `yaml:"probability" validate:"gte=0,lte=1"`
	// CycleLimit caps cycle enumeration; 0 means unlimited.
	CycleLimit int           `yaml:"cycle_limit" validate:"gte=0"`
	AutoRun    AutoRunConfig `yaml:"auto_run"`
	Report     ReportConfig  `yaml:"report"`
	Log        LogConfig     `yaml:"log"`
	Server     ServerConfig  `yaml:"server"`
}

// AutoRunConfig bounds automatic stepping.
type AutoRunConfig struct {
	MaxSteps int `yaml:"max_steps" validate:"gte=1"`
}

// ReportConfig shapes simulation reports.
type ReportConfig struct {
	// TopComponents is how many of the largest components a report lists.
	TopComponents int `yaml:"top_components" validate:"gte=0"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// ServerConfig configures the HTTP control surface.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
	// StepInterval is the auto-run tick.
	StepInterval time.Duration `yaml:"step_interval" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Nodes:       100,
		Seed:        0,
		Probability: 0.02,
		CycleLimit:  10000,
		AutoRun:     AutoRunConfig{MaxSteps: 1000},
		Report:      ReportConfig{TopComponents: 5},
		Log:         LogConfig{Level: "info"},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8080",
			StepInterval: 200 * time.Millisecond,
		},
	}
}

// Load reads path over the defaults and validates the result. Keys absent from
// the file keep their default values. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err = Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML into cfg (fields not present keep their current values)
// and validates the result. Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}

	return cfg.Validate()
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

var validate = validator.New()

// Validate checks every struct tag and reports all violations at once.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError joins field errors into one message wrapping ErrInvalidConfig.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
