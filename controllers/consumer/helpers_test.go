package consumer

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/bhubcare/bhub-backend/db"
	"github.com/bhubcare/bhub-backend/models"
)

// setupTestDB swaps the shared connection for an in-memory SQLite database
// migrated with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.BookingItem{},
		&models.Favorite{},
		&models.BookingSession{},
		&models.Order{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	old := db.DB
	db.DB = gdb
	t.Cleanup(func() { db.DB = old })

	return gdb
}

func seedRoles(t *testing.T, gdb *gorm.DB) (userRole, salonRole models.Role) {
	t.Helper()

	userRole = models.Role{Name: models.RoleUser}
	salonRole = models.Role{Name: models.RoleSalon}
	if err := gdb.Create(&userRole).Error; err != nil {
		t.Fatalf("failed to seed user role: %v", err)
	}
	if err := gdb.Create(&salonRole).Error; err != nil {
		t.Fatalf("failed to seed salon role: %v", err)
	}
	return userRole, salonRole
}

// asUser stands in for the JWT middleware, setting the locals the handlers
// read.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		c.Locals("role", models.RoleUser)
		return c.Next()
	}
}
