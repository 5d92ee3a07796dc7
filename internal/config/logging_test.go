package config

import (
	"testing"

	"github.com/atlanticdynamic/greeter/internal/config/errz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"trace", LogLevelTrace, false},
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{"warn", LogLevelWarn, false},
		{"warning", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"", "", true},
		{"fatal", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := LogLevelFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errz.ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestLogFormatFromString(t *testing.T) {
	for _, in := range []string{"txt", "text", "TEXT"} {
		got, err := LogFormatFromString(in)
		require.NoError(t, err)
		assert.Equal(t, LogFormatText, got)
	}

	got, err := LogFormatFromString("json")
	require.NoError(t, err)
	assert.Equal(t, LogFormatJSON, got)

	_, err = LogFormatFromString("logfmt")
	assert.Error(t, err)
}
