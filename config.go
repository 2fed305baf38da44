package dialogs

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/officebridge/dialogs-go/spec"
)

// Config is the YAML-loadable runtime configuration. All fields are
// optional; zero values leave the built-in defaults in place.
//
//	sessionTTL: 30m
//	maxSessions: 64
//	defaultWidth: 1024
//	defaultHeight: 768
type Config struct {
	SessionTTL    Duration `yaml:"sessionTTL"`
	MaxSessions   int      `yaml:"maxSessions"`
	DefaultWidth  float64  `yaml:"defaultWidth"`
	DefaultHeight float64  `yaml:"defaultHeight"`
}

// Duration is a time.Duration that unmarshals from the usual "30m"/"1h"
// notation.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// ParseConfig parses YAML config bytes.
func ParseConfig(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, errors.Join(spec.ErrInvalidArgument, err)
	}
	if c.MaxSessions < 0 {
		return Config{}, errors.Join(spec.ErrInvalidArgument, fmt.Errorf("maxSessions must not be negative: %d", c.MaxSessions))
	}
	return c, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}
