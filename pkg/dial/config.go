package dial

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MaxSpan is the widest Max-Min a dial accepts. Wider ranges cannot be
// resolved along the arc and would need an unbounded number of ticks.
const MaxSpan = 1 << 20

// ErrInvalidRange reports a configuration whose lower bound is not below its
// upper bound, or whose span exceeds MaxSpan.
var ErrInvalidRange = errors.New("dial: min must be less than max within MaxSpan")

// Config holds the construction options for a dial.
type Config struct {
	Min   int
	Max   int
	Value int
	Label string
}

// DefaultConfig returns the release-year configuration.
func DefaultConfig() Config {
	return Config{Min: 2000, Max: 2024, Value: 2015, Label: "Release year"}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Min = parsed
		}
	}
	if v, ok := cfg["max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Max = parsed
		}
	}
	if v, ok := cfg["value"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Value = parsed
		}
	}
	if v, ok := cfg["label"]; ok {
		c.Label = v
	}
	return c
}

// Validate reports whether the bounds describe a usable range.
func (c Config) Validate() error {
	if err := checkRange(c.Min, c.Max); err != nil {
		return fmt.Errorf("range [%d, %d]: %w", c.Min, c.Max, err)
	}
	return nil
}

func checkRange(min, max int) error {
	if min >= max {
		return ErrInvalidRange
	}
	// max-min would overflow.
	if max >= 0 && min < max-math.MaxInt {
		return ErrInvalidRange
	}
	if max-min > MaxSpan {
		return ErrInvalidRange
	}
	return nil
}

// Clamp limits v to the configured bounds.
func (c Config) Clamp(v int) int {
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}
