package db

import (
	"log"

	"github.com/bhubcare/bhub-backend/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.BookingItem{},
		&models.Favorite{},
		&models.BookingSession{},
		&models.Order{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	ensureDefaultRoles()

	log.Println("Migrations applied successfully")
}

// ensureDefaultRoles creates the two account roles BHub knows about:
// consumers and salon vendors.
func ensureDefaultRoles() {
	roles := []models.Role{
		{Name: models.RoleUser, Description: "Consumer who can book services"},
		{Name: models.RoleSalon, Description: "Salon vendor offering bookable services"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}
