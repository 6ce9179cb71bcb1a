package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/models"
	"github.com/bhubcare/bhub-backend/utils"
)

// AddCartItem adds a priced service entry to the user's pending cart.
func AddCartItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type CartInput struct {
		ServiceName string `json:"service_name"`
		Price       int64  `json:"price"`
	}

	input := new(CartInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.ServiceName == "" || input.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service name and a positive price are required",
		})
	}

	item := models.BookingItem{
		UserID:      userID,
		ServiceName: input.ServiceName,
		Price:       input.Price,
	}
	if err := db.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetCart returns the user's pending items and their subtotal.
func GetCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var items []models.BookingItem
	if err := db.DB.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch cart",
		})
	}

	return c.JSON(fiber.Map{
		"items":    items,
		"subtotal": models.Subtotal(items),
	})
}

// RemoveCartItem deletes one of the user's own line items.
func RemoveCartItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var item models.BookingItem
	if db.DB.Where("id = ? AND user_id = ?", id, userID).First(&item).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Item not found",
		})
	}

	if err := db.DB.Delete(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove item",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
