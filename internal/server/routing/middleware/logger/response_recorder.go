package logger

import "net/http"

// responseRecorder passes writes through to the wrapped writer and remembers
// the status code and the number of body bytes written.
type responseRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w}
}

// WriteHeader implements http.ResponseWriter
func (rr *responseRecorder) WriteHeader(statusCode int) {
	if rr.status == 0 {
		rr.status = statusCode
	}
	rr.ResponseWriter.WriteHeader(statusCode)
}

// Write implements http.ResponseWriter
func (rr *responseRecorder) Write(data []byte) (int, error) {
	if rr.status == 0 {
		rr.status = http.StatusOK
	}
	n, err := rr.ResponseWriter.Write(data)
	rr.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rr *responseRecorder) Unwrap() http.ResponseWriter {
	return rr.ResponseWriter
}

// Status returns the status sent, or 200 when the handler wrote nothing at all.
func (rr *responseRecorder) Status() int {
	if rr.status == 0 {
		return http.StatusOK
	}
	return rr.status
}

// Written reports whether anything was sent to the client.
func (rr *responseRecorder) Written() bool {
	return rr.status != 0
}

// Size returns the number of body bytes written.
func (rr *responseRecorder) Size() int {
	return rr.size
}
