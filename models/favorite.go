package models

import (
	"gorm.io/gorm"
)

// Favorite is a user-to-vendor bookmark, keyed by salon name per user.
type Favorite struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex:idx_user_salon"`
	SalonName string `json:"salon_name" gorm:"uniqueIndex:idx_user_salon"`
	VendorID  uint   `json:"vendor_id"`
	Location  string `json:"location"`
	PosterURL string `json:"poster_url"`
}
