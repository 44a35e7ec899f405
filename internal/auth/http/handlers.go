package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	httpmw "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgUserCreated         = "User created successfully"
	msgBadCredentials      = "Bad username or password"
	msgPasswordTooLong     = "Password is too long"
	msgInvalidJSON         = "Invalid JSON body"
	msgInternalServer      = "Internal server error"
)

// bindCredentials treats an empty body like an empty object.
func bindCredentials(c *gin.Context) (credentials, bool) {
	var body credentials
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msgInvalidJSON})
		return body, false
	}
	return body, true
}

// RegisterUser creates an account from a username and password.
func (h *Handler) RegisterUser(c *gin.Context) {
	body, ok := bindCredentials(c)
	if !ok {
		return
	}

	_, err := h.authService.Register(c.Request.Context(), body.Username, body.Password)
	switch {
	case err == nil:
		httpmw.RecordAuthAttempt("register", true)
		c.JSON(http.StatusCreated, gin.H{"msg": msgUserCreated})
	case errors.Is(err, domain.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"msg": msgCredentialsRequired})
	case errors.Is(err, domain.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"msg": msgPasswordTooLong})
	default:
		// includes duplicate usernames, which are left to the store constraint
		httpmw.RecordAuthAttempt("register", false)
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("username", body.Username).Msg("register failed")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgInternalServer})
	}
}

// Login exchanges valid credentials for an access token.
func (h *Handler) Login(c *gin.Context) {
	body, ok := bindCredentials(c)
	if !ok {
		return
	}

	accessToken, err := h.authService.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		httpmw.RecordAuthAttempt("login", false)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": msgBadCredentials})
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgInternalServer})
		return
	}

	httpmw.RecordAuthAttempt("login", true)
	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}
