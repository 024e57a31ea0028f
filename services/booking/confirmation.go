package booking

import (
	"fmt"
	"math/rand"
	"regexp"
)

// Patterns match the original booking form's validation: a permissive
// email shape and digits plus common phone punctuation.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// generateBookingCode returns the short numeric code customers quote at
// the front desk.
func generateBookingCode() string {
	return fmt.Sprintf("%d", 1000+rand.Intn(9000))
}

func validateCustomer(name, email, phone string) error {
	if name == "" {
		return NewValidationError("customerName is required")
	}
	if !emailPattern.MatchString(email) {
		return NewValidationError("invalid email format")
	}
	if !phonePattern.MatchString(phone) {
		return NewValidationError("invalid phone format")
	}
	return nil
}
