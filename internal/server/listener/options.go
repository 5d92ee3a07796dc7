package listener

import "log/slog"

// Option represents a functional option for configuring a Listener.
type Option func(*Listener)

// WithLogHandler sets a custom slog handler for the Listener.
func WithLogHandler(handler slog.Handler) Option {
	return func(l *Listener) {
		if handler != nil {
			l.logger = slog.New(handler).WithGroup("listener")
		}
	}
}

// WithLogger sets a logger for the Listener.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Listener) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithOnBound registers a callback that runs once, right after the socket is
// bound, with the port actually bound.
func WithOnBound(fn func(port int)) Option {
	return func(l *Listener) {
		l.onBound = fn
	}
}
