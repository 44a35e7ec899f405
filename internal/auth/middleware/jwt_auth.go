package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/token"
)

const (
	msgMissingHeader = "Missing Authorization Header"
	msgBadScheme     = "Missing 'Bearer' type in 'Authorization' header. Expected 'Authorization: Bearer <JWT>'"
	msgExpired       = "Token has expired"
	msgInvalid       = "Invalid token"
)

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// JWTAuth rejects requests without a valid bearer token and stores the
// token subject under auth.CtxUsername.
func JWTAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgMissingHeader})
			return
		}

		raw, ok := extractToken(header)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgBadScheme})
			return
		}

		claims, err := verifier.Verify(raw)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("bearer token rejected")
			if errors.Is(err, token.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgExpired})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgInvalid})
			return
		}

		c.Set(auth.CtxUsername, claims.Subject)
		c.Set(auth.CtxTokenID, claims.ID)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(header string) (string, bool) {
	scheme, raw, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}
