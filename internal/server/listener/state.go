package listener

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/greeter/internal/server/finitestate"
	"github.com/robbyt/go-supervisor/supervisor"
)

var _ supervisor.Stateable = (*Listener)(nil)

// GetState returns the current lifecycle state.
func (l *Listener) GetState() string {
	return l.fsm.GetState()
}

// GetStateChan returns a channel that receives the current state immediately
// and every later change. The channel is closed when ctx is done.
func (l *Listener) GetStateChan(ctx context.Context) <-chan string {
	return l.fsm.GetStateChan(ctx)
}

// IsRunning reports whether the socket is bound and accepting connections.
func (l *Listener) IsRunning() bool {
	return l.fsm.GetState() == finitestate.StatusRunning
}

// bindStateError explains why Bind refused to run from state.
func bindStateError(state string) error {
	switch state {
	case finitestate.StatusBooting, finitestate.StatusRunning:
		return ErrAlreadyBound
	case finitestate.StatusStopping, finitestate.StatusStopped:
		return ErrStopped
	default:
		return fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
}

// shutdownStates walks a bound listener through Stopping to Stopped.
func (l *Listener) shutdownStates() {
	if err := l.fsm.Transition(finitestate.StatusStopping); err != nil {
		l.logger.Debug("Failed to transition to stopping state", "error", err)
	}
	if err := l.fsm.Transition(finitestate.StatusStopped); err != nil {
		l.fsm.ForceError(l.logger)
	}
}
