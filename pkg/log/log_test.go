package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{input: "error", want: LogLevelError},
		{input: "warn", want: LogLevelWarn},
		{input: "info", want: LogLevelInfo},
		{input: "debug", want: LogLevelDebug},
		{input: "trace", want: LogLevelTrace},
		{input: "verbose", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_levelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "", 0, LogLevelInfo)

	logger.Debug("hidden %d", 1)
	logger.Info("shown %d", 2)
	logger.Error("shown %d", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	entry := map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "shown 2", entry["msg"])

	buf.Reset()
	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.Level())
	logger.Debug("shown %d", 4)
	assert.Contains(t, buf.String(), "shown 4")
}

func TestSetDefaultLogger(t *testing.T) {
	previous := getDefaultLogger()
	defer SetDefaultLogger(previous)

	buf := &bytes.Buffer{}
	SetDefaultLogger(New(buf, "", 0, LogLevelWarn))

	Info("ignored")
	Warn("careful")

	assert.NotContains(t, buf.String(), "ignored")
	assert.Contains(t, buf.String(), "careful")
}
