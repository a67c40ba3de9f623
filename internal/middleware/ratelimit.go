package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
)

// 100 requests per 15 minutes per IP, the budget the site has always run on.
const (
	rateWindow   = 15 * time.Minute
	rateRequests = 100
)

type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.visitors[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(
		rate.Limit(float64(rateRequests)/rateWindow.Seconds()),
		rateRequests,
	)
	rl.visitors[ip] = limiter

	// forget idle IPs eventually
	go func() {
		time.Sleep(2 * rateWindow)
		rl.mu.Lock()
		delete(rl.visitors, ip)
		rl.mu.Unlock()
	}()

	return limiter
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getLimiter(c.ClientIP())

		if !limiter.Allow() {
			httperr.Write(
				c, http.StatusTooManyRequests,
				"too_many_requests",
				"Demasiadas peticiones desde esta IP, intenta nuevamente en 15 minutos.",
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
