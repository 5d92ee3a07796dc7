// Package listener owns the TCP socket of the greeter service. Binding is a
// separate step from serving so callers can report a bind failure before
// anything else starts.
package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/atlanticdynamic/greeter/internal/server/finitestate"
	"github.com/robbyt/go-supervisor/supervisor"
)

var _ supervisor.Runnable = (*Listener)(nil)

// Config holds the socket and HTTP server settings for a Listener. A zero
// timeout leaves the net/http default in place.
type Config struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Addr returns the listen address, covering all interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Listener binds a TCP socket and serves HTTP on it until stopped. Its
// lifecycle is New, Booting (binding), Running (bound and serving), then
// Stopping and Stopped. A failed bind ends in Error.
type Listener struct {
	cfg     Config
	handler http.Handler
	logger  *slog.Logger
	onBound func(port int)
	fsm     *finitestate.Machine

	mu     sync.Mutex
	ln     net.Listener
	server *http.Server

	stopOnce sync.Once
	stopCh   chan struct{}
}

// New creates an unbound Listener.
func New(cfg Config, handler http.Handler, opts ...Option) (*Listener, error) {
	if handler == nil {
		return nil, errors.New("handler cannot be nil")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port %d out of range", cfg.Port)
	}

	l := &Listener{
		cfg:     cfg,
		handler: handler,
		logger:  slog.Default().WithGroup("listener"),
		stopCh:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(l)
	}

	machine, err := finitestate.New(l.logger.WithGroup("fsm").Handler())
	if err != nil {
		return nil, fmt.Errorf("unable to create fsm: %w", err)
	}
	l.fsm = machine

	return l, nil
}

// Start creates a Listener and binds it. The returned Listener is Running.
func Start(cfg Config, handler http.Handler, opts ...Option) (*Listener, error) {
	l, err := New(cfg, handler, opts...)
	if err != nil {
		return nil, err
	}
	if err := l.Bind(); err != nil {
		return nil, err
	}
	return l, nil
}

// Bind opens the listening socket. It only runs from the New state. On
// failure the error is a *BindError and the Listener is left in Error. The
// OnBound callback runs only after success.
func (l *Listener) Bind() error {
	if err := l.fsm.TransitionIfCurrentState(finitestate.StatusNew, finitestate.StatusBooting); err != nil {
		return bindStateError(l.fsm.GetState())
	}

	addr := l.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		l.logger.Debug("Bind failed", "addr", addr, "error", err)
		l.fsm.ForceError(l.logger)
		return &BindError{Addr: addr, Err: err}
	}

	l.mu.Lock()
	l.ln = ln
	l.mu.Unlock()

	if err := l.fsm.Transition(finitestate.StatusRunning); err != nil {
		// Stop arrived while booting
		if closeErr := ln.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			l.logger.Debug("Error closing listener", "error", closeErr)
		}
		return bindStateError(l.fsm.GetState())
	}

	l.logger.Debug("Bound", "addr", ln.Addr().String())
	if l.onBound != nil {
		l.onBound(l.Port())
	}
	return nil
}

// Port returns the bound port, or 0 before a successful Bind.
func (l *Listener) Port() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ln == nil {
		return 0
	}
	if tcpAddr, ok := l.ln.Addr().(*net.TCPAddr); ok {
		return tcpAddr.Port
	}
	return 0
}

// Run serves HTTP on the bound socket, binding first if needed. It returns nil
// when ctx is cancelled or Stop is called (including before Run), and a
// wrapped error if binding or serving fails.
func (l *Listener) Run(ctx context.Context) error {
	if l.GetState() == finitestate.StatusNew {
		if err := l.Bind(); err != nil {
			return err
		}
	}

	l.mu.Lock()
	switch state := l.fsm.GetState(); state {
	case finitestate.StatusRunning:
	case finitestate.StatusStopping, finitestate.StatusStopped:
		// Stop won the race with Run; nothing left to serve
		l.mu.Unlock()
		return nil
	default:
		l.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	ln := l.ln
	server := &http.Server{
		Handler:      l.handler,
		ReadTimeout:  l.cfg.ReadTimeout,
		WriteTimeout: l.cfg.WriteTimeout,
		IdleTimeout:  l.cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(l.logger.Handler(), slog.LevelDebug),
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	l.server = server
	l.mu.Unlock()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()
	l.logger.Debug("Serving", "addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		l.logger.Debug("Context done, closing")
	case <-l.stopCh:
		l.logger.Debug("Stop requested, closing")
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			l.shutdownStates()
			return nil
		}
		l.fsm.ForceError(l.logger)
		return fmt.Errorf("%w: %w", ErrServeFailed, err)
	}

	if err := l.fsm.Transition(finitestate.StatusStopping); err != nil {
		l.logger.Debug("Failed to transition to stopping state", "error", err)
	}
	if err := server.Close(); err != nil {
		l.logger.Debug("Error closing server", "error", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.fsm.ForceError(l.logger)
		return fmt.Errorf("%w: %w", ErrServeFailed, err)
	}
	if err := l.fsm.Transition(finitestate.StatusStopped); err != nil {
		l.fsm.ForceError(l.logger)
	}

	return nil
}

// Stop closes the socket immediately. Requests in flight are not drained.
// Stop is safe to call more than once and before Run.
func (l *Listener) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})

	l.mu.Lock()
	defer l.mu.Unlock()

	// Run handles the close itself once it has started serving
	if l.server != nil {
		return
	}

	switch l.fsm.GetState() {
	case finitestate.StatusNew:
		if err := l.fsm.SetState(finitestate.StatusStopped); err != nil {
			l.logger.Debug("Failed to set stopped state", "error", err)
		}
	case finitestate.StatusBooting, finitestate.StatusRunning:
		if l.ln != nil {
			if err := l.ln.Close(); err != nil {
				l.logger.Debug("Error closing listener", "error", err)
			}
		}
		l.shutdownStates()
	}
}

// String returns the name of this runnable.
func (l *Listener) String() string {
	return fmt.Sprintf("listener.Listener{addr: %s}", l.cfg.Addr())
}
