package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/projectnexus/jobboard/internal/entities"
	"golang.org/x/time/rate"
)

const currentUserKey = "current_user"

const limiterIdleTTL = 10 * time.Minute

func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := s.auth.ParseToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	return value.(*entities.User)
}

func roleRequired(userType entities.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.UserType != userType {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// rateLimit applies a per-client token bucket, keyed by remote IP. Used on
// the auth endpoints to slow down credential guessing. Buckets idle for
// limiterIdleTTL are evicted so churning client IPs cannot grow the map
// without bound.
func rateLimit(limit float64, burst int) gin.HandlerFunc {

	limiters := gocache.New(limiterIdleTTL, 2*limiterIdleTTL)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter := rate.NewLimiter(rate.Limit(limit), burst)
		if cached, ok := limiters.Get(ip); ok {
			limiter = cached.(*rate.Limiter)
		}
		limiters.SetDefault(ip, limiter)

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
