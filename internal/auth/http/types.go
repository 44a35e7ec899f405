package http

import "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"

type Handler struct {
	authService *service.AuthService
}

func New(authService *service.AuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
