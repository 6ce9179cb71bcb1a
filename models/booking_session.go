package models

import (
	"gorm.io/gorm"
)

// Placeholder is rendered for schedule fields the user has not picked yet.
const Placeholder = "N/A"

// BookingSession carries the user's current selection between the listing,
// scheduling and checkout pages. One row per user, upserted on every change.
type BookingSession struct {
	gorm.Model
	UserID          uint   `json:"user_id" gorm:"uniqueIndex"`
	VendorID        uint   `json:"vendor_id"`
	VendorName      string `json:"vendor_name"`
	Category        string `json:"category"`
	ScheduleDate    string `json:"schedule_date"`
	ScheduleTime    string `json:"schedule_time"`
	ServiceLocation string `json:"service_location"`
}

// MissingFields reports which required selections are still unset.
// Category and service location are optional.
func (s *BookingSession) MissingFields() []string {
	var missing []string
	if s.VendorID == 0 {
		missing = append(missing, "vendor_id")
	}
	if s.VendorName == "" {
		missing = append(missing, "vendor_name")
	}
	if s.ScheduleDate == "" {
		missing = append(missing, "schedule_date")
	}
	if s.ScheduleTime == "" {
		missing = append(missing, "schedule_time")
	}
	return missing
}

// BookTime is the "date, time" label used in the vendor notification.
func (s *BookingSession) BookTime() string {
	return s.ScheduleDate + ", " + s.ScheduleTime
}

// OrDefault substitutes the placeholder for unset display fields.
func OrDefault(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}
