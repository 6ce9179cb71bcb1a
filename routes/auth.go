package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhubcare/bhub-backend/controllers"
	"github.com/bhubcare/bhub-backend/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/google", controllers.GoogleLogin)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/forgot-password", controllers.ForgotPassword)
	auth.Post("/reset-password", controllers.ResetPassword)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetMe)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
