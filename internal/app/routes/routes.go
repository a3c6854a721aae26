// Package routes wires the HTTP surface to the controllers.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/faceit/backend/internal/app/controllers"
	"github.com/faceit/backend/internal/app/models/dto"
	"github.com/faceit/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	classController *controllers.ClassController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/signup/instructor", authController.SignupInstructor)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Instructor-only class routes ---
	classes := router.Group("/classes")
	classes.Use(authMiddleware.Authenticate(), authMiddleware.RequireInstructor())
	{
		classes.POST("", classController.CreateClass)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
