package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+256700123456",
		"772 123 456",
		"+1 (415) 555-0132",
	}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{
		"",
		"abc",
		"+0123",
		"12345678901234567890",
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = true, want false", phone)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@bhubcare.com", "a.b@example.co.ug"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "no-at-sign", "two@@example.com", "user@nodot"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}
