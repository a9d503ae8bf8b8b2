package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	t.Run("logs HTTP request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("test response"))
		})

		handler := NewRequestLoggingMiddleware(logger)(testHandler)

		req := httptest.NewRequest("GET", "/api/charts/success-pie.json?site=All", nil)
		req.Header.Set("User-Agent", "test-client/1.0")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "test response", recorder.Body.String())

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/charts/success-pie.json"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"user_agent":"test-client/1.0"`)
		assert.Contains(t, output, `"duration_ms":`)
		assert.Contains(t, output, `"component":"http_server"`)
		assert.NotContains(t, output, "site=All", "query strings are not logged")
	})

	t.Run("captures non-200 status codes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.WriteHeader(http.StatusInternalServerError)
		})

		handler := NewRequestLoggingMiddleware(logger)(testHandler)
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/charts/payload-scatter.json", nil))

		assert.Contains(t, buf.String(), `"status":400`)
	})

	t.Run("includes the request id and exposes the logger in context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("rendering chart")
		})

		handler := RequestIDMiddleware(NewRequestLoggingMiddleware(logger)(testHandler))

		req := httptest.NewRequest("GET", "/api/charts/success-pie.svg", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		output := buf.String()
		assert.Contains(t, output, `"msg":"rendering chart"`)
		assert.Contains(t, output, `"request_id":"req-42"`)
	})
}

// syncBuffer guards a bytes.Buffer written from the server goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRequestLoggingOnAPI(t *testing.T) {
	var buf syncBuffer
	api := createTestApi(t)
	api.Logger = logging.NewStructuredLogger(&buf, slog.LevelInfo)

	resp, _ := serveApiAndRetrieveBody(t, api, "/api/sites.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, buf.String(), `"path":"/api/sites.json"`)
	assert.Contains(t, buf.String(), `"request_id":"`+resp.Header.Get(RequestIDHeader)+`"`)
}
