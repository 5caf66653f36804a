package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrmagalhaes/jackut-api/internal/api/shared"
	"github.com/wbrmagalhaes/jackut-api/internal/platform/logger"
)

// recordingHandler is a slog.Handler that keeps every record it receives,
// folding handler-level attributes into the record so tests can inspect them.
type recordingHandler struct {
	mu      *sync.Mutex
	records *[]slog.Record
	attrs   []slog.Attr
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{mu: &sync.Mutex{}, records: &[]slog.Record{}}
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	clone := r.Clone()
	clone.AddAttrs(h.attrs...)
	*h.records = append(*h.records, clone)
	return nil
}

func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &recordingHandler{mu: h.mu, records: h.records, attrs: merged}
}

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func (h *recordingHandler) find(message string) (slog.Record, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, record := range *h.records {
		if record.Message == message {
			return record, true
		}
	}
	return slog.Record{}, false
}

func attrValue(record slog.Record, key string) string {
	var value string
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			return false
		}
		return true
	})
	return value
}

func TestTraceMiddlewareInstallsRequestLogger(t *testing.T) {
	recording := newRecordingHandler()
	base := slog.New(recording)

	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Internal server error", errors.New("boom"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/communities/gophers", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), base))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.TraceID, 2*shared.TraceIDLength)

	t.Run("request start is logged with the trace ID", func(t *testing.T) {
		record, ok := recording.find("request started")
		require.True(t, ok)
		assert.Equal(t, resp.TraceID, attrValue(record, "trace_id"))
		assert.Equal(t, "/communities/gophers", attrValue(record, "path"))
	})

	t.Run("error responses log through the request logger", func(t *testing.T) {
		record, ok := recording.find("API error response")
		require.True(t, ok)
		assert.Equal(t, slog.LevelError, record.Level)
		assert.Equal(t, resp.TraceID, attrValue(record, "trace_id"))
	})
}

func TestTraceMiddlewareWithoutBaseLogger(t *testing.T) {
	// No logger in the base context: the middleware falls back to the process
	// default and the request must still carry a trace ID.
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Len(t, shared.GetTraceID(r.Context()), 2*shared.TraceIDLength)
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
