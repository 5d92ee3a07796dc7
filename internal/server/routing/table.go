package routing

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Table is an immutable set of routes.
type Table struct {
	routes []Route
	index  map[routeKey]int
	logger *slog.Logger
}

// NewTable validates routes and builds a table from them. All problems are
// reported together.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		index:  make(map[routeKey]int, len(routes)),
		logger: slog.Default(),
	}

	errs := []error{}
	for _, route := range routes {
		route.Method = strings.ToUpper(route.Method)

		if err := validateRoute(route); err != nil {
			errs = append(errs, err)
			continue
		}

		if _, exists := t.index[route.key()]; exists {
			errs = append(errs, fmt.Errorf("%w: %s %s", ErrDuplicateRoute, route.Method, route.Path))
			continue
		}

		t.index[route.key()] = len(t.routes)
		t.routes = append(t.routes, route)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return t, nil
}

func validateRoute(r Route) error {
	switch {
	case r.Method == "":
		return fmt.Errorf("%w: route %q", ErrEmptyMethod, r.ID)
	case r.Path == "":
		return fmt.Errorf("%w: route %q", ErrEmptyPath, r.ID)
	case !strings.HasPrefix(r.Path, "/"):
		return fmt.Errorf("%w: route %q has path %q", ErrInvalidPath, r.ID, r.Path)
	case r.Handler == nil:
		return fmt.Errorf("%w: route %q", ErrNilHandler, r.ID)
	}
	return nil
}

// WithLogger returns a copy of the table that reports response write failures
// to logger. The routes are shared with the original.
func (t *Table) WithLogger(logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	return &Table{routes: t.routes, index: t.index, logger: logger}
}

// Match looks up the route for an exact method and path. A HEAD request
// falls back to the GET route for the same path when no HEAD route exists;
// net/http drops the body for HEAD responses.
func (t *Table) Match(method, path string) (Route, bool) {
	if t == nil {
		return Route{}, false
	}

	if i, ok := t.index[routeKey{method: method, path: path}]; ok {
		return t.routes[i], true
	}

	if method == http.MethodHead {
		if i, ok := t.index[routeKey{method: http.MethodGet, path: path}]; ok {
			return t.routes[i], true
		}
	}

	return Route{}, false
}

// Routes returns a copy of the routes in registration order.
func (t *Table) Routes() []Route {
	if t == nil {
		return nil
	}
	result := make([]Route, len(t.routes))
	copy(result, t.routes)
	return result
}

// Len returns the number of routes in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.routes)
}

// ServeHTTP dispatches to the matching route. Requests that match nothing get
// the net/http default 404 response.
func (t *Table) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route, ok := t.Match(r.Method, r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := route.Handler(r).Send(w); err != nil {
		t.logger.Debug("Response write failed",
			"route", route.ID, "path", r.URL.Path, "error", err)
	}
}
