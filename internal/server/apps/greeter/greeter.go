// Package greeter implements the app that answers every matched request with
// the same fixed greeting.
package greeter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/atlanticdynamic/greeter/internal/server/apps"
	"golang.org/x/net/http/httpguts"
)

// DefaultContentType is sent with every greeting unless overridden.
const DefaultContentType = "text/plain; charset=utf-8"

// ErrInvalidContentType is returned by New when the content type cannot be
// sent as a header value.
var ErrInvalidContentType = errors.New("invalid content type")

var _ apps.App = (*App)(nil)

// App returns a fixed greeting. It holds no mutable state, so one instance
// is safe to share across every connection.
type App struct {
	id          string
	greeting    string
	contentType string
}

// Option configures an App.
type Option func(*App)

// WithContentType replaces the Content-Type sent with the greeting.
func WithContentType(contentType string) Option {
	return func(a *App) {
		a.contentType = contentType
	}
}

// New creates a greeter app that responds with greeting.
func New(id, greeting string, opts ...Option) (*App, error) {
	a := &App{
		id:          id,
		greeting:    greeting,
		contentType: DefaultContentType,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.contentType == "" || !httpguts.ValidHeaderFieldValue(a.contentType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContentType, a.contentType)
	}

	return a, nil
}

// String returns the unique identifier of the application
func (a *App) String() string {
	return a.id
}

// Respond ignores the request and returns the greeting.
func (a *App) Respond(_ *http.Request) apps.Response {
	return apps.Response{
		Status:      http.StatusOK,
		ContentType: a.contentType,
		Body:        a.greeting,
	}
}
