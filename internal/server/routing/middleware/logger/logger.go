// Package logger provides HTTP middleware that writes one diagnostic log
// record per request.
package logger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
)

// RequestIDHeader carries the generated request ID back to the client.
const RequestIDHeader = "X-Request-Id"

// RequestLogger logs every request passing through it.
type RequestLogger struct {
	logger *slog.Logger
}

// New creates a request logger that writes to handler, grouped under "http".
// A nil handler falls back to the default slog handler.
func New(handler slog.Handler) *RequestLogger {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RequestLogger{
		logger: slog.New(handler).WithGroup("http"),
	}
}

// Wrap returns next with request logging around it. The response itself is
// left untouched apart from the request ID header.
func (rl *RequestLogger) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := newRequestID()
		w.Header().Set(RequestIDHeader, requestID)

		rec := newResponseRecorder(w)
		next.ServeHTTP(rec, r)

		rl.logRequest(r, rec, requestID, time.Since(start))
	})
}

func (rl *RequestLogger) logRequest(
	r *http.Request,
	rec *responseRecorder,
	requestID string,
	duration time.Duration,
) {
	status := rec.Status()

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	rl.logger.LogAttrs(r.Context(), level, "HTTP request",
		slog.String("request_id", requestID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
		slog.Int("status", status),
		slog.Int("size", rec.Size()),
		slog.Duration("duration", duration),
	)
}

// newRequestID returns a time-ordered v6 UUID, or an empty string if the
// generator fails.
func newRequestID() string {
	id, err := uuid.NewV6()
	if err != nil {
		return ""
	}
	return id.String()
}
