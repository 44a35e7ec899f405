package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	authhttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/http"
	authmw "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/middleware"
	authrepo "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/security"
	authsvc "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/token"
	projecthttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/http"
	projectrepo "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/repository"
	projectsvc "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/service"
)

type APIDeps struct {
	DB   *sqlx.DB
	Auth config.AuthConfig
}

// RegisterAPI mounts the auth and project endpoints under /api.
func RegisterAPI(r *gin.Engine, dep APIDeps) {
	api := r.Group("/api")

	issuer := token.NewIssuer(dep.Auth.JWTSecret, dep.Auth.AccessTokenTTL)
	hasher := security.NewPasswordHasher(dep.Auth.BcryptCost)

	userRepo := authrepo.NewUserRepository(dep.DB)
	authhttp.New(authsvc.NewAuthService(userRepo, hasher, issuer)).Register(api)

	requireAuth := authmw.JWTAuth(issuer)

	projectRepo := projectrepo.NewProjectRepository(dep.DB)
	projecthttp.New(projectsvc.NewProjectService(projectRepo)).Register(api.Group("/projects"), requireAuth)
}
