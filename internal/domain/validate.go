package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Value validation. These checks run before any write reaches the store.

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	idNumberPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
)

// ValidateEmail checks that the given string is a plausible email address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

// ValidateAmount checks that a monetary amount is non-negative.
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %.2f", ErrInvalidAmount, amount)
	}
	return nil
}

// ValidateISBN checks that the string is an ISBN-10 or ISBN-13 code.
// Hyphens and spaces are ignored. The empty string is allowed because
// ISBN is an optional field on catalog items.
func ValidateISBN(isbn string) error {
	if isbn == "" {
		return nil
	}
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(isbn)
	if (len(cleaned) != 10 && len(cleaned) != 13) || !digitsPattern.MatchString(cleaned) {
		return fmt.Errorf("%w: %q", ErrInvalidISBN, isbn)
	}
	return nil
}

// ValidateIDNumber checks that an identification number is non-empty and
// contains only letters, digits and hyphens.
func ValidateIDNumber(idNumber string) error {
	if !idNumberPattern.MatchString(idNumber) {
		return fmt.Errorf("%w: %q", ErrInvalidIDNumber, idNumber)
	}
	return nil
}
