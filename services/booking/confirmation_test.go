package booking

import (
	"strconv"
	"testing"
)

func TestGenerateBookingCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := generateBookingCode()
		if len(code) != 4 {
			t.Fatalf("booking code %q is not 4 digits", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("booking code %q is not numeric: %v", code, err)
		}
		if n < 1000 || n > 9999 {
			t.Fatalf("booking code %d out of range", n)
		}
	}
}

func TestValidateCustomer(t *testing.T) {
	cases := []struct {
		name, email, phone string
		wantErr            bool
	}{
		{"Jane Doe", "jane@example.com", "+1 (555) 123-4567", false},
		{"Jane Doe", "jane@example.com", "555 123 4567", false},
		{"", "jane@example.com", "5551234567", true},
		{"Jane Doe", "jane@", "5551234567", true},
		{"Jane Doe", "jane example.com", "5551234567", true},
		{"Jane Doe", "jane@example.com", "call me", true},
		{"Jane Doe", "jane@example.com", "", true},
	}
	for _, tc := range cases {
		err := validateCustomer(tc.name, tc.email, tc.phone)
		if (err != nil) != tc.wantErr {
			t.Errorf("validateCustomer(%q, %q, %q) err = %v, wantErr %v",
				tc.name, tc.email, tc.phone, err, tc.wantErr)
		}
	}
}
