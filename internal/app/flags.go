package app

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"yeardial/pkg/dial"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Min      int
	Max      int
	Value    int
	Label    string
	Scale    int
	TPS      int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := dial.DefaultConfig()
	return &Config{
		Min:      d.Min,
		Max:      d.Max,
		Value:    d.Value,
		Label:    d.Label,
		Scale:    3,
		TPS:      60,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Min, "min", c.Min, "lower bound of the dial, inclusive")
	fs.IntVar(&c.Max, "max", c.Max, "upper bound of the dial, inclusive")
	fs.IntVar(&c.Value, "value", c.Value, "initial value")
	fs.StringVar(&c.Label, "label", c.Label, "caption shown above the dial")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// DialConfig returns the widget configuration.
func (c *Config) DialConfig() dial.Config {
	return dial.Config{Min: c.Min, Max: c.Max, Value: c.Value, Label: c.Label}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
