// Package auth implements the client-side password policy and the password
// encoding strategies the service accepts at signup and login.
package auth

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the minimum accepted password length in characters.
const MinPasswordLength = 9

// passwordSymbols is the set of symbols the service requires at least one of.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// Password policy errors. They are returned before any request is issued so
// obviously bad credentials never leave the machine.
var (
	ErrPasswordTooShort = errors.New("password must be at least 9 characters")
	ErrPasswordNoSymbol = errors.New("password must contain at least one symbol")
)

// ValidatePassword enforces the signup password policy locally.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !strings.ContainsAny(password, passwordSymbols) {
		return ErrPasswordNoSymbol
	}
	return nil
}
