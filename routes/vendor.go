package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhubcare/bhub-backend/controllers/consumer"
	"github.com/bhubcare/bhub-backend/middleware"
)

// SetupVendorRoutes configures the salon listing and favorite routes
func SetupVendorRoutes(app *fiber.App) {
	vendors := app.Group("/vendors")
	vendors.Get("/", consumer.GetAllVendors)
	vendors.Get("/:id", consumer.GetVendorDetails)
	vendors.Post("/:id/favorite", middleware.Protected(), consumer.ToggleFavorite)

	app.Get("/favorites", middleware.Protected(), consumer.GetFavorites)
}
