package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/solvex-capital/marketing-core/internal/pkg/jwt"
	"github.com/solvex-capital/marketing-core/internal/pkg/response"
)

// ContextKeySubject holds the authenticated subject id on the gin context.
const ContextKeySubject = "subject_id"

// Auth enforces a valid JWT bearer token. The public content routes do not
// mount this; it is available for deployments that front admin tooling with
// the same server.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeySubject, claims.Subject)
		c.Next()
	}
}

// CurrentSubject extracts the authenticated subject ID from context.
func CurrentSubject(c *gin.Context) string {
	v, _ := c.Get(ContextKeySubject)
	id, _ := v.(string)
	return id
}

func extractToken(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		token = strings.TrimSpace(c.Query("token"))
	}
	return token
}
