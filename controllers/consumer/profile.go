package consumer

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/models"
	"github.com/bhubcare/bhub-backend/utils"
)

// GetProfile returns the logged-in user's contact and delivery details.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.Preload("Role").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.Password = ""

	return c.JSON(user)
}

// UpdateProfile updates contact and delivery fields. Omitted fields keep
// their previous values.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type ProfileInput struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
		DeliverTo string `json:"deliver_to"`
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid phone number",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.DeliverTo != "" {
		user.DeliverTo = input.DeliverTo
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	user.Password = ""

	return c.JSON(user)
}

// UpdateProfilePicture uploads a new picture to Cloudinary and stores the
// secure URL on the user.
func UpdateProfilePicture(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("profile_picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get profile picture",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open profile picture",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("user_%d_%d", userID, time.Now().Unix())

	secureURL, err := utils.UploadToCloudinary(f, publicID, "profile_pictures")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload profile picture",
		})
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("profile_picture", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile picture",
		})
	}

	return c.JSON(fiber.Map{
		"profile_picture": secureURL,
	})
}
