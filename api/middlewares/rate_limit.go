package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitor holds the rate limiter and the last time we saw this IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	// General page visitors
	visitors   = make(map[string]*visitor)
	visitorsMu sync.Mutex

	// Stricter visitors for login / password reset
	authVisitors   = make(map[string]*visitor)
	authVisitorsMu sync.Mutex
)

func newVisitorLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Second), 100)
}

func newAuthVisitorLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(10*time.Second), 100)
}

func getVisitor(ip string) *rate.Limiter {
	visitorsMu.Lock()
	defer visitorsMu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := newVisitorLimiter()
		visitors[ip] = &visitor{
			limiter:  limiter,
			lastSeen: time.Now(),
		}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func getAuthVisitor(ip string) *rate.Limiter {
	authVisitorsMu.Lock()
	defer authVisitorsMu.Unlock()

	v, exists := authVisitors[ip]
	if !exists {
		limiter := newAuthVisitorLimiter()
		authVisitors[ip] = &visitor{
			limiter:  limiter,
			lastSeen: time.Now(),
		}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// RateLimitMiddleware applies a simple per-IP rate limit for all routes.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getVisitor(c.ClientIP())
		if !limiter.Allow() {
			c.String(http.StatusTooManyRequests, "Too many requests. Please slow down.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthRateLimitMiddleware applies a stricter per-IP rate limit for auth routes.
func AuthRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getAuthVisitor(c.ClientIP())
		if !limiter.Allow() {
			c.String(http.StatusTooManyRequests, "Too many authentication attempts. Please wait and try again.")
			c.Abort()
			return
		}
		c.Next()
	}
}
