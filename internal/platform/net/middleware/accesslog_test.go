package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creditclear/internal/platform/logger"
	"creditclear/internal/platform/testkit"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	testkit.Serial(t)
	var buf bytes.Buffer
	testkit.Swap(t, logger.Get(), zerolog.New(&buf))
	return &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var m map[string]any
		require.NoError(t, json.Unmarshal(l, &m))
		out = append(out, m)
	}
	return out
}

func TestAccessLog_LineWithRequestID(t *testing.T) {
	buf := captureLog(t)

	h := chimw.RequestID(AccessLog(AccessLogOptions{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.C(r.Context()).Info().Msg("scoring")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hi"))
		_, _ = w.Write([]byte("there"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scoring/predict", nil)
	req.Header.Set(chimw.RequestIDHeader, "rid-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "hithere", rec.Body.String())

	got := lines(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "rid-42", got[0]["request_id"])
	access := got[1]
	assert.Equal(t, "info", access["level"])
	assert.Equal(t, "rid-42", access["request_id"])
	assert.EqualValues(t, 201, access["status"])
	assert.EqualValues(t, 7, access["bytes"])
	assert.Equal(t, "/api/v1/scoring/predict", access["path"])
}

func TestAccessLog_SlowIsWarnAndDefaultStatus(t *testing.T) {
	buf := captureLog(t)

	h := AccessLog(AccessLogOptions{Slow: time.Nanosecond})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		time.Sleep(time.Millisecond)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil))

	got := lines(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "warn", got[0]["level"])
	assert.EqualValues(t, 200, got[0]["status"])
	assert.NotContains(t, got[0], "request_id")
}
