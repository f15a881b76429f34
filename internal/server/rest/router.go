package rest

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fahmiks/portfolio-api/internal/logging"
	"github.com/fahmiks/portfolio-api/internal/server/config"
)

// NewRouter builds the gin engine with CORS, logging and metrics middleware
// and every API route registered.
func NewRouter(cfg *config.Config, logger logging.Logger, h *Handler) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Portfolio API is running")
	})
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGate := h.requireAuth()

	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", authGate, h.Logout)
		api.GET("/auth/is-auth", authGate, h.IsAuth)

		api.GET("/projects", h.ListProjects)
		api.GET("/projects/:slug", h.GetProject)
		api.POST("/projects/create", authGate, h.CreateProject)
		api.PUT("/projects/edit/:slug", authGate, h.UpdateProject)
		api.DELETE("/projects/delete/:slug", authGate, h.DeleteProject)

		api.GET("/skills", h.ListSkills)
		api.GET("/skills/:id", h.GetSkill)
		api.POST("/skills/create", authGate, h.CreateSkill)
		api.PUT("/skills/edit/:id", authGate, h.UpdateSkill)
		api.DELETE("/skills/delete/:id", authGate, h.DeleteSkill)

		api.GET("/certificates", h.ListCertificates)
		api.GET("/certificates/:id", h.GetCertificate)
		api.POST("/certificates/create", authGate, h.CreateCertificate)
		api.PUT("/certificates/edit/:id", authGate, h.UpdateCertificate)
		api.DELETE("/certificates/delete/:id", authGate, h.DeleteCertificate)

		api.GET("/categories", h.ListCategories)
		api.POST("/categories/create", authGate, h.CreateCategory)
		api.PUT("/categories/edit/:id", authGate, h.UpdateCategory)
		api.DELETE("/categories/delete/:id", authGate, h.DeleteCategory)

		api.GET("/levels", h.ListLevels)

		api.GET("/user", h.ListUsers)
		api.GET("/user/:id", h.GetUser)
		api.PUT("/user/edit", authGate, h.EditProfile)

		api.POST("/contact", h.Contact)
	}

	return r
}
