// Package apps defines what an application looks like to the HTTP layer.
package apps

import "net/http"

// App defines the interface that all applications must implement.
type App interface {
	// String returns the unique identifier of the application
	String() string

	// Respond maps a request to a response without side effects
	Respond(req *http.Request) Response
}
