package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestRequestLogger_RecordsStatusAndPassesThrough(t *testing.T) {
	t.Parallel()
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/x", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body not passed through: %q", rec.Body.String())
	}
}

func TestRequestLogger_FlushReachesUnderlyingWriter(t *testing.T) {
	t.Parallel()
	// Streamed proxy responses flush mid-request; the status recorder must not
	// swallow that.
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("chunk"))
		if err := http.NewResponseController(w).Flush(); err != nil {
			t.Errorf("flush through recorder failed: %v", err)
		}
	}), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/stream", nil))

	if !rec.Flushed {
		t.Fatal("flush did not reach the underlying writer")
	}
}
