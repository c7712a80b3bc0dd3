package logutil_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/frantjc/pubip/internal/logutil"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogConfigLevel(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want slog.Level
	}{
		{"default", nil, slog.LevelError},
		{"one", []string{"-V"}, slog.LevelWarn},
		{"two", []string{"-VV"}, slog.LevelInfo},
		{"three", []string{"--verbose", "--verbose", "--verbose"}, slog.LevelDebug},
		{"quiet", []string{"-q", "-VVV"}, slog.LevelError + 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				cfg   = new(logutil.SlogConfig)
				flags = pflag.NewFlagSet(tt.name, pflag.ContinueOnError)
			)
			cfg.AddFlags(flags)
			require.NoError(t, flags.Parse(tt.args))

			assert.Equal(t, tt.want, cfg.Level())
		})
	}
}

func TestSloggerFrom_Empty(t *testing.T) {
	log := logutil.SloggerFrom(context.Background())
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestSloggerInto(t *testing.T) {
	var (
		buf = new(bytes.Buffer)
		log = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = logutil.SloggerInto(context.Background(), log)
	)

	assert.Same(t, log, logutil.SloggerFrom(ctx))

	logr.FromContextOrDiscard(ctx).Info("dialing", "network", "tcp4")
	assert.Contains(t, buf.String(), "msg=dialing network=tcp4")
}
