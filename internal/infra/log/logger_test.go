package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"regexp"
	"testing"

	"notekeeper/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(config.Log{Level: "warn"}, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.Int64("userID", 7))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.EqualValues(t, 7, entry["userID"])
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(config.Log{Pretty: true, Level: "debug"}, &buf)
	require.NoError(t, err)

	logger.Debug("hello", slog.String("k", "v"))

	// tint colours its output even when writing to a buffer.
	plain := ansiEscape.ReplaceAllString(buf.String(), "")
	assert.Contains(t, plain, "DBG hello")
	assert.Contains(t, plain, "k=v")
}

func TestNew_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	logger, err := New(Params{Config: cfg})
	assert.Error(t, err)
	assert.Nil(t, logger)
}
