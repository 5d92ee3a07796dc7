// Package testutil holds helpers shared by tests that open real sockets.
package testutil

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	portMutex = &sync.Mutex{}
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a port that was free a moment ago and has not been
// handed out before in this test binary.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	for {
		listener, err := net.Listen("tcp", ":0")
		require.NoError(t, err, "failed to get random port")

		p := listener.Addr().(*net.TCPAddr).Port
		require.NoError(t, listener.Close(), "failed to close listener")

		if _, ok := usedPorts[p]; ok {
			continue
		}
		usedPorts[p] = struct{}{}
		return p
	}
}

// OccupyPort binds a port on all interfaces and holds it until the test ends.
func OccupyPort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err, "failed to occupy port")
	t.Cleanup(func() {
		if err := listener.Close(); err != nil {
			t.Logf("failed to release occupied port: %v", err)
		}
	})
	return listener.Addr().(*net.TCPAddr).Port
}
