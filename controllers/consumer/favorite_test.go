package consumer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/bhubcare/bhub-backend/models"
)

func TestToggleFavoriteIdempotent(t *testing.T) {
	gdb := setupTestDB(t)
	userRole, salonRole := seedRoles(t, gdb)

	customer := models.User{Email: "jane@example.com", FirstName: "Jane", RoleID: userRole.ID}
	if err := gdb.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	vendor := models.User{
		Email:       "bookings@glowsalon.ug",
		RoleID:      salonRole.ID,
		DisplayName: "Glow Salon",
		Location:    "Kampala",
	}
	if err := gdb.Create(&vendor).Error; err != nil {
		t.Fatalf("failed to seed vendor: %v", err)
	}

	app := fiber.New()
	app.Post("/vendors/:id/favorite", asUser(customer.ID), ToggleFavorite)

	toggle := func() bool {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/vendors/%d/favorite", vendor.ID), nil)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		var body struct {
			VendorID  uint `json:"vendor_id"`
			Favorited bool `json:"favorited"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return body.Favorited
	}

	favoriteCount := func() int64 {
		var count int64
		gdb.Unscoped().Model(&models.Favorite{}).Where("user_id = ?", customer.ID).Count(&count)
		return count
	}

	// First toggle creates the mark.
	if !toggle() {
		t.Error("first toggle should report favorited")
	}
	if got := favoriteCount(); got != 1 {
		t.Fatalf("favorites after first toggle = %d, want 1", got)
	}

	// Second toggle removes it and leaves no orphaned row, soft-deleted or
	// otherwise.
	if toggle() {
		t.Error("second toggle should report un-favorited")
	}
	if got := favoriteCount(); got != 0 {
		t.Fatalf("favorites after double toggle = %d, want 0", got)
	}

	// A third toggle can recreate the mark.
	if !toggle() {
		t.Error("third toggle should report favorited again")
	}
	if got := favoriteCount(); got != 1 {
		t.Fatalf("favorites after third toggle = %d, want 1", got)
	}
}
