package consumer

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/models"
)

// ToggleFavorite flips the bookmark for a salon. Toggling twice leaves no
// relation row behind.
func ToggleFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	vendorID := c.Params("id")

	var vendor models.User
	if err := db.DB.Preload("Role").First(&vendor, vendorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vendor not found",
		})
	}
	if vendor.Role.Name != models.RoleSalon {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User is not a salon",
		})
	}

	var favorited bool
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Favorite
		result := tx.Where("user_id = ? AND salon_name = ?", userID, vendor.DisplayName).First(&existing)
		if result.RowsAffected > 0 {
			// Hard delete so a re-toggle can recreate the unique key.
			return tx.Unscoped().Delete(&existing).Error
		}

		favorited = true
		return tx.Create(&models.Favorite{
			UserID:    userID,
			SalonName: vendor.DisplayName,
			VendorID:  vendor.ID,
			Location:  vendor.Location,
			PosterURL: vendor.PosterURL,
		}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle favorite",
		})
	}

	return c.JSON(fiber.Map{
		"vendor_id": vendor.ID,
		"favorited": favorited,
	})
}

// GetFavorites returns the user's bookmarked salons.
func GetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var favorites []models.Favorite
	if err := db.DB.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch favorites",
		})
	}

	return c.JSON(fiber.Map{
		"favorites": favorites,
		"count":     len(favorites),
	})
}
