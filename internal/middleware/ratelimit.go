package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solvex-capital/marketing-core/internal/pkg/response"
	redispkg "github.com/solvex-capital/marketing-core/internal/pkg/redis"
)

// RateLimitCategory describes one request quota bucket. Each category keeps
// its own per-IP counter so heavy read traffic cannot exhaust write quotas.
type RateLimitCategory struct {
	Name    string
	Max     int64
	Window  time.Duration
	Message string
}

var (
	// RateLimitGeneral covers all read endpoints.
	RateLimitGeneral = RateLimitCategory{
		Name:    "general",
		Max:     1000,
		Window:  15 * time.Minute,
		Message: "Too many requests from this IP, please try again later.",
	}
	// RateLimitBlogWrite covers blog create/update/delete.
	RateLimitBlogWrite = RateLimitCategory{
		Name:    "blog-write",
		Max:     50,
		Window:  15 * time.Minute,
		Message: "Too many blog write requests from this IP, please try again later.",
	}
	// RateLimitBlogTypeWrite covers blog type create/update/delete.
	RateLimitBlogTypeWrite = RateLimitCategory{
		Name:    "blogtype-write",
		Max:     20,
		Window:  15 * time.Minute,
		Message: "Too many blog type write requests from this IP, please try again later.",
	}
	// RateLimitLanding covers landing page writes.
	RateLimitLanding = RateLimitCategory{
		Name:    "landing",
		Max:     100,
		Window:  15 * time.Minute,
		Message: "Too many landing page requests from this IP, please try again later.",
	}
	// RateLimitPageContent covers page content writes.
	RateLimitPageContent = RateLimitCategory{
		Name:    "page-content",
		Max:     100,
		Window:  15 * time.Minute,
		Message: "Too many page content requests from this IP, please try again later.",
	}
)

// RateLimit enforces a fixed-window per-IP quota for the given category.
// When Redis is unreachable the request is allowed through; limiting is a
// protection layer, not a dependency.
func RateLimit(rdb *redispkg.Client, cat RateLimitCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		window := time.Now().Unix() / int64(cat.Window.Seconds())
		key := fmt.Sprintf("mcms:rate_limit:%s:%s:%d", cat.Name, ip, window)

		count, err := rdb.Raw().Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Raw().PExpire(ctx, key, cat.Window+time.Second)
		}

		if count > cat.Max {
			retry := cat.Window.Seconds() - float64(time.Now().Unix()%int64(cat.Window.Seconds()))
			c.Header("Retry-After", strconv.Itoa(int(retry)))
			response.TooManyRequests(c, cat.Message, "")
			return
		}

		c.Next()
	}
}
