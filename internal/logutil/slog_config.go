package logutil

import (
	"log/slog"

	"github.com/spf13/pflag"
)

// SlogConfig configures a slog.Handler's level from flags.
// It implements slog.Leveler so that it can be passed directly
// as slog.HandlerOptions.Level.
type SlogConfig struct {
	Verbosity int
	Quiet     bool
}

var _ slog.Leveler = new(SlogConfig)

// Level implements slog.Leveler. With no flags set only errors are
// logged; each -V lowers the level by one step of slog's scale.
func (c *SlogConfig) Level() slog.Level {
	if c.Quiet {
		return slog.LevelError + 4
	}

	return slog.Level(int(slog.LevelError) - 4*c.Verbosity)
}

// AddFlags registers the flags that populate c.
func (c *SlogConfig) AddFlags(flags *pflag.FlagSet) {
	flags.CountVarP(&c.Verbosity, "verbose", "V", "Verbosity")
	flags.BoolVarP(&c.Quiet, "quiet", "q", false, "Suppress all logs")
}
