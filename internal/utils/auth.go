package utils

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword generates a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword compares a bcrypt hashed password with its possible plaintext equivalent.
// Returns true if the password and hash match, false otherwise.
func CheckPassword(password, hashedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

const passwordSymbols = "@$!%*?&"

// ValidatePassword enforces the registration password policy: more than
// 12 characters, at least one uppercase letter, one digit and one
// symbol from the allowed set.
func ValidatePassword(password string) error {
	if len(password) <= 12 {
		return errors.New("password must be longer than 12 characters")
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper {
		return errors.New("password must contain an uppercase letter")
	}
	if !hasDigit {
		return errors.New("password must contain a digit")
	}
	if !strings.ContainsAny(password, passwordSymbols) {
		return errors.New("password must contain one of " + passwordSymbols)
	}
	return nil
}

// AllowedImageExt reports whether the filename carries an accepted
// image extension (png, jpg or jpeg).
func AllowedImageExt(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "png", "jpg", "jpeg":
		return true
	}
	return false
}
