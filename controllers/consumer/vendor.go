package consumer

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/models"
	"github.com/bhubcare/bhub-backend/redis"
)

const (
	vendorCacheKey = "vendors:all"
	vendorCacheTTL = 5 * time.Minute
)

// fetchVendors returns all salon accounts, serving from the Redis cache when
// it is warm and falling back to Postgres otherwise.
func fetchVendors() ([]models.User, error) {
	if redis.Client != nil {
		cached, err := redis.Client.Get(redis.Ctx, vendorCacheKey).Result()
		if err == nil {
			var vendors []models.User
			if err := json.Unmarshal([]byte(cached), &vendors); err == nil {
				return vendors, nil
			}
		}
	}

	var vendors []models.User
	if err := db.DB.Preload("Role").
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("roles.name = ?", models.RoleSalon).
		Find(&vendors).Error; err != nil {
		return nil, err
	}

	// Clean sensitive data before it reaches the cache or the client.
	for i := range vendors {
		vendors[i].Password = ""
		vendors[i].OTP = ""
	}

	if redis.Client != nil {
		payload, err := json.Marshal(vendors)
		if err == nil {
			if err := redis.Client.Set(redis.Ctx, vendorCacheKey, payload, vendorCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache vendor list: %v", err)
			}
		}
	}

	return vendors, nil
}

// vendorMatches reports whether a vendor's display name or location contains
// the search term, case-insensitively.
func vendorMatches(vendor models.User, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(vendor.DisplayName), term) ||
		strings.Contains(strings.ToLower(vendor.Location), term)
}

// GetAllVendors returns all salons, optionally filtered by the q parameter.
func GetAllVendors(c *fiber.Ctx) error {
	vendors, err := fetchVendors()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch vendors",
		})
	}

	query := c.Query("q")
	if query != "" {
		filtered := make([]models.User, 0, len(vendors))
		for _, vendor := range vendors {
			if vendorMatches(vendor, query) {
				filtered = append(filtered, vendor)
			}
		}
		vendors = filtered
	}

	return c.JSON(fiber.Map{
		"vendors": vendors,
		"count":   len(vendors),
	})
}

// GetVendorDetails returns details for a specific salon
func GetVendorDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var vendor models.User
	if err := db.DB.Preload("Role").First(&vendor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vendor not found",
		})
	}

	if vendor.Role.Name != models.RoleSalon {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User is not a salon",
		})
	}

	vendor.Password = ""
	vendor.OTP = ""

	return c.JSON(vendor)
}
