package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapture(t *testing.T, level slog.Level) (*bytes.Buffer, slog.Handler) {
	t.Helper()
	buf := new(bytes.Buffer)
	return buf, slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})
}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestRequestLogger_Wrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		method     string
		path       string
		wantStatus int
		wantSize   int
		wantLevel  string
	}{
		{
			name: "ok response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("hello"))
			},
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
			wantSize:   5,
			wantLevel:  "DEBUG",
		},
		{
			name:       "not found",
			handler:    http.NotFound,
			method:     http.MethodPost,
			path:       "/missing",
			wantStatus: http.StatusNotFound,
			wantSize:   len("404 page not found\n"),
			wantLevel:  "DEBUG",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			method:     http.MethodGet,
			path:       "/boom",
			wantStatus: http.StatusInternalServerError,
			wantSize:   0,
			wantLevel:  "ERROR",
		},
		{
			name:       "handler writes nothing",
			handler:    func(http.ResponseWriter, *http.Request) {},
			method:     http.MethodGet,
			path:       "/empty",
			wantStatus: http.StatusOK,
			wantSize:   0,
			wantLevel:  "DEBUG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, handler := newCapture(t, slog.LevelDebug)
			wrapped := New(handler).Wrap(tt.handler)

			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			record := decodeRecord(t, buf)
			assert.Equal(t, "HTTP request", record["msg"])
			assert.Equal(t, tt.wantLevel, record["level"])

			group, ok := record["http"].(map[string]any)
			require.True(t, ok, "attributes are grouped under http")
			assert.Equal(t, tt.method, group["method"])
			assert.Equal(t, tt.path, group["path"])
			assert.InDelta(t, float64(tt.wantStatus), group["status"], 0)
			assert.InDelta(t, float64(tt.wantSize), group["size"], 0)
			assert.Contains(t, group, "duration")

			requestID, ok := group["request_id"].(string)
			require.True(t, ok)
			id, err := uuid.FromString(requestID)
			require.NoError(t, err)
			assert.Equal(t, byte(uuid.V6), id.Version())
			assert.Equal(t, requestID, rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestRequestLogger_DoesNotAlterResponse(t *testing.T) {
	t.Parallel()

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("問候"))
	})

	bare := httptest.NewRecorder()
	inner.ServeHTTP(bare, httptest.NewRequest(http.MethodGet, "/", nil))

	_, handler := newCapture(t, slog.LevelDebug)
	logged := httptest.NewRecorder()
	New(handler).Wrap(inner).ServeHTTP(logged, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, bare.Code, logged.Code)
	assert.Equal(t, bare.Body.Bytes(), logged.Body.Bytes())
	assert.Equal(t, bare.Header().Get("Content-Type"), logged.Header().Get("Content-Type"))
}

func TestRequestLogger_QuietAboveDebug(t *testing.T) {
	t.Parallel()

	buf, handler := newCapture(t, slog.LevelInfo)
	wrapped := New(handler).Wrap(http.NotFoundHandler())

	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, buf.String())
}

func TestNew_NilHandler(t *testing.T) {
	t.Parallel()

	rl := New(nil)
	require.NotNil(t, rl)
	assert.NotPanics(t, func() {
		rl.Wrap(http.NotFoundHandler()).ServeHTTP(
			httptest.NewRecorder(),
			httptest.NewRequest(http.MethodGet, "/", nil),
		)
	})
}

func TestResponseRecorder(t *testing.T) {
	t.Parallel()

	t.Run("fresh recorder", func(t *testing.T) {
		rr := newResponseRecorder(httptest.NewRecorder())
		assert.False(t, rr.Written())
		assert.Equal(t, http.StatusOK, rr.Status())
		assert.Equal(t, 0, rr.Size())
	})

	t.Run("first status wins", func(t *testing.T) {
		rr := newResponseRecorder(httptest.NewRecorder())
		rr.WriteHeader(http.StatusTeapot)
		rr.WriteHeader(http.StatusOK)
		assert.True(t, rr.Written())
		assert.Equal(t, http.StatusTeapot, rr.Status())
	})

	t.Run("size accumulates", func(t *testing.T) {
		inner := httptest.NewRecorder()
		rr := newResponseRecorder(inner)
		_, err := rr.Write([]byte("abc"))
		require.NoError(t, err)
		_, err = rr.Write([]byte("de"))
		require.NoError(t, err)
		assert.Equal(t, 5, rr.Size())
		assert.Equal(t, "abcde", inner.Body.String())
		assert.Same(t, inner, rr.Unwrap())
	})
}
