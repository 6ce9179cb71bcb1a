package models

import (
	"gorm.io/gorm"
)

// BookingItem is a single priced service entry in a user's pending cart.
type BookingItem struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index"`
	ServiceName string `json:"service_name"`
	Price       int64  `json:"price"` // UGX
}

// Subtotal sums line-item prices for the checkout view.
func Subtotal(items []BookingItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price
	}
	return total
}
