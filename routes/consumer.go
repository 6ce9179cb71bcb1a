package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhubcare/bhub-backend/controllers/consumer"
	"github.com/bhubcare/bhub-backend/middleware"
)

// SetupConsumerRoutes configures cart, checkout, order and profile routes
func SetupConsumerRoutes(app *fiber.App) {
	cart := app.Group("/cart", middleware.Protected())
	cart.Post("/", consumer.AddCartItem)
	cart.Get("/", consumer.GetCart)
	cart.Delete("/:id", consumer.RemoveCartItem)

	checkout := app.Group("/checkout", middleware.Protected())
	checkout.Put("/session", consumer.UpsertSession)
	checkout.Get("/session", consumer.GetSession)
	checkout.Get("/preview", consumer.GetCheckoutPreview)
	checkout.Post("/confirm", consumer.ConfirmBooking)

	orders := app.Group("/orders", middleware.Protected())
	orders.Get("/", consumer.GetOrders)
	orders.Get("/latest", consumer.GetLatestOrder)

	profile := app.Group("/profile", middleware.Protected())
	profile.Get("/", consumer.GetProfile)
	profile.Patch("/", consumer.UpdateProfile)
	profile.Post("/picture", consumer.UpdateProfilePicture)
}
