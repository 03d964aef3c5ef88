package middleware

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RateLimiter stores rate limiters for different clients
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	limit    rate.Limit
	burst    int
	mutex    sync.Mutex
}

// NewRateLimiter allows perMinute requests per client per minute, bursting to the same amount.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

// GetLimiter returns the limiter for key, creating it on first use
func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	rl.lastSeen[key] = time.Now()
	return limiter
}

// Cleanup removes limiters idle for longer than maxIdle and reports how many went.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) int {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	removed := 0
	now := time.Now()
	for key, t := range rl.lastSeen {
		if now.Sub(t) > maxIdle {
			delete(rl.limiters, key)
			delete(rl.lastSeen, key)
			removed++
		}
	}
	return removed
}

// Size is the number of tracked clients.
func (rl *RateLimiter) Size() int {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	return len(rl.limiters)
}

// RateLimitMiddleware implements rate limiting per client IP
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !rl.GetLimiter(clientIP).Allow() {
			log.Printf("🚫 Rate limit exceeded for %s %s from %s", c.Request.Method, c.FullPath(), clientIP)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"message":     "Too many requests. Please try again later.",
				"retry_after": 60,
			})
			return
		}
		c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Next()
	}
}

// CORSMiddleware allows the configured origins only
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware keeps a caller-supplied request id or mints a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// MaxBodyBytes caps every request body.
const MaxBodyBytes = 1024 * 1024

// InputValidationMiddleware rejects oversized bodies and non-JSON writes. A
// body without a declared length is cut off at MaxBodyBytes while it is read.
func InputValidationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > MaxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":   "Request too large",
				"message": "Request body exceeds maximum size limit",
			})
			return
		}

		if c.Request.Method == http.MethodPost || c.Request.Method == http.MethodPut {
			if !strings.Contains(c.GetHeader("Content-Type"), "application/json") {
				c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
					"error":   "Invalid content type",
					"message": "Content-Type must be application/json",
				})
				return
			}
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
		}
		c.Next()
	}
}

// AuditLogMiddleware logs every request with its outcome
func AuditLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		requestID := c.GetString("request_id")
		if status >= 400 {
			log.Printf("⚠️ AUDIT [%s]: %s %s returned %d in %v", requestID, c.Request.Method, c.Request.URL.Path, status, duration)
		} else {
			log.Printf("✅ AUDIT [%s]: %s %s returned %d in %v", requestID, c.Request.Method, c.Request.URL.Path, status, duration)
		}
	}
}
