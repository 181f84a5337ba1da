package middlewarectx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/middlewarectx"
)

func TestRateLimiter_PerIP(t *testing.T) {
	rl := middlewarectx.NewRateLimiter(0.001, 2)
	handler := rl.Middleware(newNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1002"))

	assert.Equal(t, http.StatusOK, do("10.0.0.2:1000"))
}
