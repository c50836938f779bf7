package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "bearer "

// BearerToken extracts the credential from an "Authorization: Bearer <token>"
// header value. Anything else yields an empty string.
func BearerToken(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// RequestToken reads the credential from the Authorization header, falling
// back to the access_token query parameter browsers use for websockets.
func RequestToken(c *gin.Context) string {
	if token := BearerToken(c.GetHeader("Authorization")); token != "" {
		return token
	}
	return c.Query("access_token")
}
