// Package validation contains input validation rules for user-supplied fields.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)

const (
	minPasswordLen = 8
	maxPasswordLen = 128
)

// ValidateUsername checks length and character rules for usernames.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.New("username must be 3-50 characters and contain only letters, digits and underscores")
	}
	if strings.HasPrefix(username, "_") || strings.HasSuffix(username, "_") {
		return errors.New("username cannot start or end with an underscore")
	}
	return nil
}

// ValidatePassword enforces minimum password strength.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > maxPasswordLen {
		return errors.New("password must be at most 128 characters")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one digit")
	}
	return nil
}
