package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/bhubcare/bhub-backend/cron"
	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/redis"
	"github.com/bhubcare/bhub-backend/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BHub booking API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupVendorRoutes(app)
	routes.SetupConsumerRoutes(app)
	routes.SetupNotifyRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
