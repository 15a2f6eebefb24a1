// Package config contains the TOML configuration for the container stress driver.
package config

import (
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/seq/pkg/combinators"
)

// Container names accepted in StressConfig.Containers.
const (
	ForwardList = "forwardlist"
	List        = "list"
	Vector      = "vector"
)

// Defaults applied to keys absent from a config file.
const (
	DefaultRounds  = 4
	DefaultInserts = 100000
)

// DefaultSeed is the initial content of every stressed container.
var DefaultSeed = []int{1, 2, 7, 5, 1, 1, 23, 15, 69, 1}

// ErrInvalidConfig is returned when a decoded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid stress config")

// StressConfig controls a run of the stress driver.
type StressConfig struct {
	// Rounds is the number of fill/drain cycles per container per run.
	Rounds int `toml:"rounds"`
	// Inserts is the number of elements pushed and popped in one round.
	Inserts int `toml:"inserts"`
	// Containers lists which containers are exercised, in order.
	Containers []string `toml:"containers"`
	// Seed is the content each container starts with and keeps across rounds.
	Seed []int `toml:"seed"`
	// RandomSeed, when non-zero, makes rounds insert reproducible
	// pseudo-random values instead of 0..inserts-1, and lets the doubly
	// linked list pick its insertion end with a coin flip.
	RandomSeed uint64 `toml:"random_seed"`
	// LogLevel overrides the driver's log level when non-empty.
	LogLevel string `toml:"log_level"`
}

// Default returns a StressConfig with every field at its default.
func Default() *StressConfig {
	c := &StressConfig{}
	c.applyDefaults()
	return c
}

func (c *StressConfig) applyDefaults() {
	c.Rounds = combinators.Or(c.Rounds, DefaultRounds)
	c.Inserts = combinators.Or(c.Inserts, DefaultInserts)
	if c.Containers == nil {
		c.Containers = []string{ForwardList, List, Vector}
	}
	if c.Seed == nil {
		c.Seed = append([]int(nil), DefaultSeed...)
	}
}

// Validate reports the first problem with c, if any.
func (c *StressConfig) Validate() error {
	if c.Rounds < 0 {
		return errors.Wrapf(ErrInvalidConfig, "rounds must not be negative, got %d", c.Rounds)
	}
	if c.Inserts < 0 {
		return errors.Wrapf(ErrInvalidConfig, "inserts must not be negative, got %d", c.Inserts)
	}
	if len(c.Containers) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no containers enabled")
	}
	seen := make(map[string]bool, len(c.Containers))
	for _, name := range c.Containers {
		switch name {
		case ForwardList, List, Vector:
		default:
			return errors.Wrapf(ErrInvalidConfig, "unknown container %q", name)
		}
		if seen[name] {
			return errors.Wrapf(ErrInvalidConfig, "container %q listed twice", name)
		}
		seen[name] = true
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "log_level: %s", err)
		}
	}
	return nil
}

// ParseStressConfig decodes a TOML document, applies defaults and validates
// the result. Unknown keys are an error.
func ParseStressConfig(data string) (*StressConfig, error) {
	c := &StressConfig{}
	md, err := toml.Decode(data, c)
	if err != nil {
		return nil, errors.Wrap(err, "decoding stress config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadStressConfigFromFile reads and parses the config at path. An empty path
// yields the defaults.
func LoadStressConfigFromFile(path string) (*StressConfig, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := fs.ReadFile(fileSystem, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	c, err := ParseStressConfig(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}
