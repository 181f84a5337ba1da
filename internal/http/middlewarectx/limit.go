package middlewarectx

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/response"
)

// limiterIdleTTL: через сколько неактивный лимитер клиента удаляется.
const limiterIdleTTL = 10 * time.Minute

// RateLimiter ограничивает частоту запросов с одного IP по алгоритму token bucket.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// NewRateLimiter создаёт ограничитель на perSecond запросов в секунду с запасом burst.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: cache.New(limiterIdleTTL, limiterIdleTTL),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.limiters.Get(ip); ok {
		limiter := v.(*rate.Limiter)
		rl.limiters.SetDefault(ip, limiter)
		return limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters.SetDefault(ip, limiter)
	return limiter
}

// Middleware возвращает HTTP middleware, отвечающий 429 при превышении лимита.
func (rl *RateLimiter) Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !rl.getLimiter(ip).Allow() {
				log.Warn("too many requests", slog.String("ip", ip))
				response.JSONError(w, r, http.StatusTooManyRequests, response.MsgTooManyRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
