// Package routing maps (method, path) pairs to pure handler functions. The
// table is built once and never changes, so lookups need no locking and the
// whole mapping can be inspected without starting a listener.
package routing

import (
	"fmt"
	"net/http"

	"github.com/atlanticdynamic/greeter/internal/server/apps"
)

// HandlerFunc maps an inbound request to an outbound response.
type HandlerFunc func(*http.Request) apps.Response

// Route binds an HTTP method and an exact path to a handler.
type Route struct {
	ID      string
	Method  string
	Path    string
	Handler HandlerFunc
}

// NewAppRoute builds a route that delegates to app.Respond.
func NewAppRoute(method, path string, app apps.App) Route {
	return Route{
		ID:      app.String(),
		Method:  method,
		Path:    path,
		Handler: app.Respond,
	}
}

// String returns a string representation of a Route.
func (r Route) String() string {
	return fmt.Sprintf("%s %s -> %s", r.Method, r.Path, r.ID)
}

type routeKey struct {
	method string
	path   string
}

func (r Route) key() routeKey {
	return routeKey{method: r.Method, path: r.Path}
}
