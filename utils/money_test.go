package utils

import "testing"

func TestFormatUGX(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1,000"},
		{15000, "15,000"},
		{40000, "40,000"},
		{1234567, "1,234,567"},
		{-40000, "-40,000"},
	}

	for _, tt := range tests {
		if got := FormatUGX(tt.amount); got != tt.want {
			t.Errorf("FormatUGX(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
