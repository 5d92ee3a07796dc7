package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/atlanticdynamic/greeter/internal/config/errz"
	"github.com/atlanticdynamic/greeter/internal/logging/writers"
)

const maxPort = 65535

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", errz.ErrMissingRequiredField)
	}

	errs := []error{}

	if c.Version != VersionLatest {
		errs = append(errs, fmt.Errorf("%w: %q", errz.ErrUnsupportedConfigVer, c.Version))
	}

	// port 0 is allowed and means "any free port"
	if c.Port < 0 || c.Port > maxPort {
		errs = append(errs, fmt.Errorf("%w: port %d must be between 0 and %d", errz.ErrOutOfRange, c.Port, maxPort))
	}

	switch {
	case c.Greeting == "":
		errs = append(errs, fmt.Errorf("%w: greeting", errz.ErrMissingRequiredField))
	case !utf8.ValidString(c.Greeting):
		errs = append(errs, fmt.Errorf("%w: greeting is not valid UTF-8", errz.ErrInvalidValue))
	}

	errs = append(errs, c.Logging.validate()...)
	errs = append(errs, c.HTTP.validate()...)

	return errors.Join(errs...)
}

func (l Logging) validate() []error {
	errs := []error{}
	if !l.Level.IsValid() {
		errs = append(errs, fmt.Errorf("%w: log level %q", errz.ErrInvalidValue, l.Level))
	}
	if !l.Format.IsValid() {
		errs = append(errs, fmt.Errorf("%w: log format %q", errz.ErrInvalidValue, l.Format))
	}
	if err := writers.ValidateOutput(l.Output); err != nil {
		errs = append(errs, fmt.Errorf("%w: log output: %w", errz.ErrInvalidValue, err))
	}
	return errs
}

func (h HTTPOptions) validate() []error {
	errs := []error{}
	timeouts := []struct {
		name  string
		value Duration
	}{
		{"read_timeout", h.ReadTimeout},
		{"write_timeout", h.WriteTimeout},
		{"idle_timeout", h.IdleTimeout},
	}
	for _, to := range timeouts {
		if to.value < 0 {
			errs = append(errs, fmt.Errorf("%w: %s cannot be negative (%s)", errz.ErrOutOfRange, to.name, to.value))
		}
	}
	return errs
}
