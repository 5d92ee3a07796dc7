// Package finitestate wraps go-fsm with the lifecycle states used by the
// server's runnables and a broadcast hook for state subscribers.
package finitestate

import (
	"context"
	"log/slog"
	"time"

	"github.com/robbyt/go-fsm/v2"
	"github.com/robbyt/go-fsm/v2/hooks"
	"github.com/robbyt/go-fsm/v2/hooks/broadcast"
	"github.com/robbyt/go-fsm/v2/transitions"
)

const (
	StatusNew       = transitions.StatusNew
	StatusBooting   = transitions.StatusBooting
	StatusRunning   = transitions.StatusRunning
	StatusReloading = transitions.StatusReloading
	StatusStopping  = transitions.StatusStopping
	StatusStopped   = transitions.StatusStopped
	StatusError     = transitions.StatusError
	StatusUnknown   = transitions.StatusUnknown
)

// broadcastTimeout bounds how long a state change waits on a slow subscriber.
const broadcastTimeout = 5 * time.Second

// Machine is a go-fsm machine whose state changes are broadcast to
// subscribers.
type Machine struct {
	*fsm.Machine
	broadcastManager *broadcast.Manager
}

// New creates a machine in StatusNew using the typical lifecycle transitions.
func New(handler slog.Handler) (*Machine, error) {
	registry, err := hooks.NewRegistry(
		hooks.WithLogHandler(handler),
		hooks.WithTransitions(transitions.Typical),
	)
	if err != nil {
		return nil, err
	}

	broadcastManager := broadcast.NewManager(handler)
	err = registry.RegisterPostTransitionHook(hooks.PostTransitionHookConfig{
		Name:   "broadcast",
		From:   []string{"*"},
		To:     []string{"*"},
		Action: broadcastManager.BroadcastHook,
	})
	if err != nil {
		return nil, err
	}

	machine, err := fsm.New(
		StatusNew,
		transitions.Typical,
		fsm.WithLogHandler(handler),
		fsm.WithCallbackRegistry(registry),
	)
	if err != nil {
		return nil, err
	}

	return &Machine{
		Machine:          machine,
		broadcastManager: broadcastManager,
	}, nil
}

// GetStateChan returns a channel that receives the current state right away
// and every later change. The channel is closed when ctx is done.
func (m *Machine) GetStateChan(ctx context.Context) <-chan string {
	out := make(chan string, 1)

	updates, err := m.broadcastManager.GetStateChan(ctx, broadcast.WithTimeout(broadcastTimeout))
	if err != nil {
		close(out)
		return out
	}

	out <- m.GetState()
	go func() {
		defer close(out)
		for state := range updates {
			out <- state
		}
	}()

	return out
}

// ForceError moves the machine to StatusError, bypassing the transition
// table if it has to.
func (m *Machine) ForceError(logger *slog.Logger) {
	if m.TransitionBool(StatusError) {
		return
	}

	logger.Debug("Using SetState to force Error state")
	if err := m.SetState(StatusError); err != nil {
		logger.Error("Failed to set Error state", "error", err)
		if err := m.SetState(StatusUnknown); err != nil {
			logger.Error("Failed to set Unknown state", "error", err)
		}
	}
}
