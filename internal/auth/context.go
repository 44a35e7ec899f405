package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUsername = "username"
	CtxTokenID  = "token_jti"
)

// Username returns the authenticated username set by the JWT middleware.
func Username(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUsername))
}
