package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	do := func(handler http.Handler, caller string) int {
		req := httptest.NewRequest(http.MethodPost, "/documents", nil)
		if caller != "" {
			req = req.WithContext(WithCaller(req.Context(), caller))
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("allows up to the limit then rejects", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute)
		handler := limiter.Limit(okHandler)

		assert.Equal(t, http.StatusNoContent, do(handler, "alice"))
		assert.Equal(t, http.StatusNoContent, do(handler, "alice"))
		assert.Equal(t, http.StatusTooManyRequests, do(handler, "alice"))
	})

	t.Run("buckets are per caller", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)
		handler := limiter.Limit(okHandler)

		assert.Equal(t, http.StatusNoContent, do(handler, "alice"))
		assert.Equal(t, http.StatusTooManyRequests, do(handler, "alice"))
		assert.Equal(t, http.StatusNoContent, do(handler, "bob"))
	})

	t.Run("budget frees up once the window slides past", func(t *testing.T) {
		limiter := NewRateLimiter(1, 10*time.Millisecond)
		handler := limiter.Limit(okHandler)

		assert.Equal(t, http.StatusNoContent, do(handler, "alice"))
		assert.Equal(t, http.StatusTooManyRequests, do(handler, "alice"))
		time.Sleep(15 * time.Millisecond)
		assert.Equal(t, http.StatusNoContent, do(handler, "alice"))
	})
}
