package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/service"
)

const identityKey = "identity"

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. ok is false when the header is absent or malformed.
func bearerToken(c *gin.Context) (token string, ok bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// authRequired rejects requests without a valid bearer token and attaches the
// decoded identity to the context otherwise.
func (h *Handler) authRequired(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing or malformed Authorization header",
		})
		return
	}

	ident, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(identityKey, ident)
	c.Next()
}

// authOptional attaches an identity when a valid bearer token is present and
// silently proceeds as anonymous otherwise.
func (h *Handler) authOptional(c *gin.Context) {
	if token, ok := bearerToken(c); ok {
		if ident, err := h.services.ParseToken(token); err == nil {
			c.Set(identityKey, ident)
		}
	}
	c.Next()
}

// identityFrom returns the identity attached by the auth middleware. The
// zero Identity means an anonymous caller.
func identityFrom(c *gin.Context) service.Identity {
	if v, ok := c.Get(identityKey); ok {
		if ident, ok := v.(service.Identity); ok {
			return ident
		}
	}
	return service.Identity{}
}
