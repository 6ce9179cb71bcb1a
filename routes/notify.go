package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhubcare/bhub-backend/controllers"
)

// SetupNotifyRoutes configures the notification relay endpoint
func SetupNotifyRoutes(app *fiber.App) {
	app.Post("/api/send-email", controllers.RelayEmail)
}
