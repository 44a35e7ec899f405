package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/routes"
)

type RouterDeps struct {
	Config *config.Config
	DB     *sqlx.DB
	Log    zerolog.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecureHeaders(middleware.SecureOptions(!dep.Config.App.IsProduction())))
	r.Use(cors.New(corsConfig(dep.Config.CORS)))

	healthHandler := httpapi.NewHealthHandler(dep.Config.App.Name, dep.Config.App.Version, dep.DB)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterAPI(r, routes.APIDeps{
		DB:   dep.DB,
		Auth: dep.Config.Auth,
	})

	return r
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowedOrigins
	return c
}
