package models

import "testing"

func TestSubtotal(t *testing.T) {
	t.Run("SumsAllItemPrices", func(t *testing.T) {
		items := []BookingItem{
			{UserID: 1, ServiceName: "Haircut", Price: 15000},
			{UserID: 1, ServiceName: "Manicure", Price: 25000},
		}
		if got := Subtotal(items); got != 40000 {
			t.Errorf("Subtotal = %d, want 40000", got)
		}
	})

	t.Run("EmptyCartIsZero", func(t *testing.T) {
		if got := Subtotal(nil); got != 0 {
			t.Errorf("Subtotal of empty cart = %d, want 0", got)
		}
	})

	t.Run("SingleItem", func(t *testing.T) {
		items := []BookingItem{{UserID: 2, ServiceName: "Massage", Price: 50000}}
		if got := Subtotal(items); got != 50000 {
			t.Errorf("Subtotal = %d, want 50000", got)
		}
	})
}
