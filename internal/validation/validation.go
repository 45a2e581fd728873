// Package validation provides input validation utilities
package validation

import (
	"regexp"
	"unicode"

	"corkboard/internal/models"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is well-formed
func ValidateEmail(email string) error {
	if email == "" {
		return models.NewValidationError("Email is required")
	}
	if len(email) > 254 {
		return models.NewValidationError("Email must not exceed 254 characters")
	}
	if !emailPattern.MatchString(email) {
		return models.NewValidationError("Email is not a valid address")
	}
	return nil
}

// ValidatePassword checks if a password meets the complexity policy:
// 8-20 characters containing an uppercase letter, a lowercase letter,
// a digit and a special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return models.NewValidationError("Password must be at least 8 characters long")
	}
	if len(password) > 20 {
		return models.NewValidationError("Password must not exceed 20 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return models.NewValidationError("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return models.NewValidationError("Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return models.NewValidationError("Password must contain at least one digit")
	}
	if !hasSpecial {
		return models.NewValidationError("Password must contain at least one special character")
	}
	return nil
}

// ValidateNickname checks if a nickname meets requirements
func ValidateNickname(nickname string) error {
	if nickname == "" {
		return models.NewValidationError("Nickname is required")
	}
	if len([]rune(nickname)) > 10 {
		return models.NewValidationError("Nickname must not exceed 10 characters")
	}
	return nil
}
