package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards-api/pkg/apperr"
	"github.com/oksasatya/photocards-api/pkg/helpers"
	"github.com/oksasatya/photocards-api/pkg/response"
)

// CtxUserIDKey is the gin context key under which the authenticated caller's
// id is stored. Only this middleware writes it.
const CtxUserIDKey = "userID"

const bearerPrefix = "Bearer "

// Auth extracts and verifies the bearer token from the Authorization header
// and injects the caller id into the context. Every failure path returns the
// same generic 401: clients cannot tell a missing header from a bad
// signature or an expired token.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	unauthorized := apperr.Unauthorized("authorization required")
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.AbortFail(c, unauthorized)
			return
		}
		claims, err := jwt.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			response.AbortFail(c, unauthorized)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

// CallerID returns the authenticated caller's id, or "" when the request
// did not pass through Auth.
func CallerID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}
