package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-importer/internal/shared/server/respond"
)

const (
	userIDKey   = "userId"
	isGuestKey  = "isGuest"
	maxGuestLen = 128
)

// Identity requires an X-Guest-Id header and stores the principal as
// "guest:<id>" in the context. Preflight requests pass through.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}
		if len(guestID) > maxGuestLen {
			respond.Error(c, http.StatusBadRequest, "invalid_identity", "Guest id is too long", nil)
			return
		}

		c.Set(userIDKey, "guest:"+guestID)
		c.Set(isGuestKey, true)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
