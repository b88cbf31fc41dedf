package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jince360/styvia/pkg/logger"
)

func TestRequestLogging_GeneratesCorrelationID(t *testing.T) {
	var gotID string
	h := RequestLogging(quietLogger(new(bytes.Buffer)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = logger.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.NotEmpty(t, gotID)
	assert.Equal(t, gotID, rec.Header().Get("X-Correlation-ID"))
}

func TestRequestLogging_HonorsIncomingCorrelationID(t *testing.T) {
	h := RequestLogging(quietLogger(new(bytes.Buffer)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store", nil)
	req.Header.Set("X-Correlation-ID", "corr-123")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, "corr-123", rec.Header().Get("X-Correlation-ID"))
}

func TestStatusRecorder_CapturesStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}

	sr.WriteHeader(http.StatusNotFound)
	sr.WriteHeader(http.StatusOK) // later calls do not overwrite
	n, err := sr.Write([]byte("not found"))

	assert.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, http.StatusNotFound, sr.status)
	assert.Equal(t, 9, sr.bytes)
}

func TestStatusRecorder_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}

	_, err := sr.Write([]byte("ok"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, sr.status)
	assert.True(t, sr.wroteHeader)
}
