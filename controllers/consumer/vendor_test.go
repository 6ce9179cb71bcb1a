package consumer

import (
	"testing"

	"github.com/bhubcare/bhub-backend/models"
)

func TestVendorMatches(t *testing.T) {
	glow := models.User{DisplayName: "Glow Salon", Location: "Kampala"}
	serenity := models.User{DisplayName: "Serenity Spa", Location: "Entebbe"}

	tests := []struct {
		name   string
		vendor models.User
		term   string
		want   bool
	}{
		{"NameSubstringCaseInsensitive", glow, "glow", true},
		{"UppercaseTerm", glow, "GLOW", true},
		{"LocationSubstring", serenity, "entebbe", true},
		{"NoMatch", serenity, "glow", false},
		{"TrimsSpaces", glow, "  glow  ", true},
		{"EmptyTermMatchesAll", serenity, "", true},
		{"PartialLocation", glow, "kamp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vendorMatches(tt.vendor, tt.term); got != tt.want {
				t.Errorf("vendorMatches(%s, %q) = %v, want %v", tt.vendor.DisplayName, tt.term, got, tt.want)
			}
		})
	}
}
