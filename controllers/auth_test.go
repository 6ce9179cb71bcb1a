package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Role{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := gdb.Create(&models.Role{Name: models.RoleUser}).Error; err != nil {
		t.Fatalf("failed to seed user role: %v", err)
	}

	old := db.DB
	db.DB = gdb
	t.Cleanup(func() { db.DB = old })

	return gdb
}

// swapTokenInfo points Google ID token verification at a local server.
func swapTokenInfo(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := googleTokenInfoURL
	googleTokenInfoURL = ts.URL
	t.Cleanup(func() { googleTokenInfoURL = old })
}

func googleSignIn(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{"id_token":"tok"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestGoogleLogin(t *testing.T) {
	gdb := setupTestDB(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-123")

	swapTokenInfo(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"email":          "jane@example.com",
			"email_verified": "true",
			"given_name":     "Jane",
			"family_name":    "Doe",
			"aud":            "client-123",
		})
	})

	app := fiber.New()
	app.Post("/auth/google", GoogleLogin)

	t.Run("FirstSignInCreatesConsumerAccount", func(t *testing.T) {
		resp := googleSignIn(t, app)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var body struct {
			Token        string `json:"token"`
			RefreshToken string `json:"refreshToken"`
			User         struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Token == "" || body.RefreshToken == "" {
			t.Error("sign-in should return an access and refresh token")
		}
		if body.User.Email != "jane@example.com" {
			t.Errorf("user email = %q, want jane@example.com", body.User.Email)
		}
		if body.User.Role != models.RoleUser {
			t.Errorf("user role = %q, want %q", body.User.Role, models.RoleUser)
		}

		var user models.User
		if err := gdb.Where("email = ?", "jane@example.com").First(&user).Error; err != nil {
			t.Fatalf("user not created: %v", err)
		}
		if user.FirstName != "Jane" || user.LastName != "Doe" {
			t.Errorf("user name = %q %q, want Jane Doe", user.FirstName, user.LastName)
		}
	})

	t.Run("RepeatSignInReusesAccount", func(t *testing.T) {
		resp := googleSignIn(t, app)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var count int64
		gdb.Model(&models.User{}).Where("email = ?", "jane@example.com").Count(&count)
		if count != 1 {
			t.Errorf("accounts for jane@example.com = %d, want 1", count)
		}
	})
}

func TestGoogleLoginRejectsBadToken(t *testing.T) {
	setupTestDB(t)

	swapTokenInfo(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusBadRequest)
	})

	app := fiber.New()
	app.Post("/auth/google", GoogleLogin)

	resp := googleSignIn(t, app)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestGoogleLoginRejectsAudienceMismatch(t *testing.T) {
	setupTestDB(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-123")

	swapTokenInfo(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"email":          "jane@example.com",
			"email_verified": "true",
			"aud":            "someone-else",
		})
	})

	app := fiber.New()
	app.Post("/auth/google", GoogleLogin)

	resp := googleSignIn(t, app)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}
