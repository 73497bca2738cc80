package session

import (
	"errors"
	"regexp"
	"strings"
)

// Input validation errors. These are caught before any network call.
var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrWeakPassword    = errors.New("password does not meet requirements")
	ErrPasswordSpaces  = errors.New("password cannot contain spaces")
	ErrPasswordsDiffer = errors.New("passwords do not match")
)

// emailRe matches the basic local@domain.tld shape with no whitespace.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the basic address shape used by both auth flows.
func ValidateEmail(email string) error {
	if strings.ContainsAny(email, " \t\n") || !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateLoginPassword only requires a non-empty password; the backend is
// the authority on whether it is correct.
func ValidateLoginPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// ValidateRegistrationPassword enforces the account-creation policy:
// at least 8 characters with upper case, lower case, a digit, and a
// special character, and no spaces.
func ValidateRegistrationPassword(password string) error {
	if strings.Contains(password, " ") {
		return ErrPasswordSpaces
	}
	if len(password) < 8 {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}
