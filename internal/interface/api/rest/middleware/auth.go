package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"file-manager-api/internal/application/ports"
)

const (
	// HeaderToken carries the opaque session token.
	HeaderToken = "X-Token"

	CtxUserID = "userID"
	CtxToken  = "sessionToken"
)

// AuthMiddleware resolves the X-Token header against the session store and
// aborts with 401 when the token is missing, unknown or expired. The three
// causes are indistinguishable on the wire.
func AuthMiddleware(sessions ports.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderToken)
		if token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Unauthorized"},
			)
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to resolve session"},
			)
			return
		}
		if userID == uuid.Nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Unauthorized"},
			)
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxToken, token)

		c.Next()
	}
}

// Identify is the non-aborting variant used on the public content route:
// it attaches the requester's id when a valid token is present and lets
// anonymous requests through untouched.
func Identify(sessions ports.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderToken)
		if token != "" {
			if userID, err := sessions.Resolve(c.Request.Context(), token); err == nil && userID != uuid.Nil {
				c.Set(CtxUserID, userID)
			}
		}

		c.Next()
	}
}

// RequesterID returns the authenticated user id from the gin context, or
// uuid.Nil for anonymous requests.
func RequesterID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
