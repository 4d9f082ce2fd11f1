package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/markoub/careers/internal/api/handlers"
	"github.com/markoub/careers/internal/api/middleware"
)

type Deps struct {
	Positions    *handlers.PositionHandler
	Applications *handlers.ApplicationHandler
	Auth         *handlers.AuthHandler

	// UploadDir, when set, is served under /uploads so the dashboard
	// can open resumes stored by the local backend.
	UploadDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/api/auth/login", d.Auth.Login)

	// Public catalog + intake
	r.GET("/api/positions", d.Positions.List)
	r.GET("/api/positions/:id", d.Positions.Get)
	r.POST("/api/applications", d.Applications.Submit)

	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	// Dashboard routes (JWT + admin role)
	admin := r.Group("/api")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())

	admin.GET("/applications", d.Applications.List)
	admin.POST("/positions", d.Positions.Create)
	admin.PUT("/positions/:id", d.Positions.Update)
	admin.DELETE("/positions/:id", d.Positions.Delete)
}
