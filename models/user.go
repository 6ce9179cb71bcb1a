package models

import (
	"strings"
	"time"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email" gorm:"unique"`
	Password       string    `json:"password,omitempty"`
	Phone          string    `json:"phone"`
	DeliverTo      string    `json:"deliver_to"`
	ProfilePicture string    `json:"profile_picture"`
	RoleID         uint      `json:"role_id"`
	Role           Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	OTP            string    `json:"-"`
	OTPExpiresAt   time.Time `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Vendor fields, set only for salon accounts.
	DisplayName string `json:"display_name"`
	Location    string `json:"location"`
	PosterURL   string `json:"poster_url"`
}

// FullName joins first and last name the way the booking views render it.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
