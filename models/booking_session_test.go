package models

import (
	"testing"
)

func TestBookingSessionMissingFields(t *testing.T) {
	t.Run("EmptySessionMissingAllRequired", func(t *testing.T) {
		s := BookingSession{}
		missing := s.MissingFields()
		want := []string{"vendor_id", "vendor_name", "schedule_date", "schedule_time"}
		if len(missing) != len(want) {
			t.Fatalf("MissingFields = %v, want %v", missing, want)
		}
		for i, field := range want {
			if missing[i] != field {
				t.Errorf("MissingFields[%d] = %s, want %s", i, missing[i], field)
			}
		}
	})

	t.Run("CategoryAndLocationOptional", func(t *testing.T) {
		s := BookingSession{
			VendorID:     1,
			VendorName:   "Glow Salon",
			ScheduleDate: "2026-09-01",
			ScheduleTime: "10:00 AM",
		}
		if missing := s.MissingFields(); len(missing) != 0 {
			t.Errorf("MissingFields = %v, want none", missing)
		}
	})

	t.Run("ScheduleFieldsRequired", func(t *testing.T) {
		s := BookingSession{VendorID: 1, VendorName: "Glow Salon"}
		missing := s.MissingFields()
		if len(missing) != 2 || missing[0] != "schedule_date" || missing[1] != "schedule_time" {
			t.Errorf("MissingFields = %v, want [schedule_date schedule_time]", missing)
		}
	})
}

func TestBookingSessionBookTime(t *testing.T) {
	s := BookingSession{ScheduleDate: "2026-09-01", ScheduleTime: "10:00 AM"}
	if got := s.BookTime(); got != "2026-09-01, 10:00 AM" {
		t.Errorf("BookTime = %q, want %q", got, "2026-09-01, 10:00 AM")
	}
}

func TestOrDefault(t *testing.T) {
	if got := OrDefault(""); got != Placeholder {
		t.Errorf("OrDefault(\"\") = %q, want %q", got, Placeholder)
	}
	if got := OrDefault("Kampala"); got != "Kampala" {
		t.Errorf("OrDefault(\"Kampala\") = %q, want \"Kampala\"", got)
	}
}
