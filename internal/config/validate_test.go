package config

import (
	"testing"
	"time"

	"github.com/atlanticdynamic/greeter/internal/config/errz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr []error
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
		},
		{
			name:   "port zero is allowed",
			modify: func(c *Config) { c.Port = 0 },
		},
		{
			name:   "highest port is allowed",
			modify: func(c *Config) { c.Port = 65535 },
		},
		{
			name:    "negative port",
			modify:  func(c *Config) { c.Port = -1 },
			wantErr: []error{errz.ErrOutOfRange},
		},
		{
			name:    "port too large",
			modify:  func(c *Config) { c.Port = 65536 },
			wantErr: []error{errz.ErrOutOfRange},
		},
		{
			name:    "empty greeting",
			modify:  func(c *Config) { c.Greeting = "" },
			wantErr: []error{errz.ErrMissingRequiredField},
		},
		{
			name:    "greeting with invalid utf-8",
			modify:  func(c *Config) { c.Greeting = "hi \xff" },
			wantErr: []error{errz.ErrInvalidValue},
		},
		{
			name:    "unsupported version",
			modify:  func(c *Config) { c.Version = "v2" },
			wantErr: []error{errz.ErrUnsupportedConfigVer},
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.Logging.Level = "chatty" },
			wantErr: []error{errz.ErrInvalidValue},
		},
		{
			name:    "bad log format",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: []error{errz.ErrInvalidValue},
		},
		{
			name:    "bad log output",
			modify:  func(c *Config) { c.Logging.Output = "syslog://localhost" },
			wantErr: []error{errz.ErrInvalidValue},
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.HTTP.ReadTimeout = FromDuration(-time.Second) },
			wantErr: []error{errz.ErrOutOfRange},
		},
		{
			name: "several problems are all reported",
			modify: func(c *Config) {
				c.Port = 70000
				c.Greeting = ""
				c.Logging.Format = "xml"
			},
			wantErr: []error{errz.ErrOutOfRange, errz.ErrMissingRequiredField, errz.ErrInvalidValue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.modify(cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	var cfg *Config
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errz.ErrMissingRequiredField)
}
