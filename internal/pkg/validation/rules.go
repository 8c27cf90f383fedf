package validation

import (
	"regexp"
	"unicode"
)

// Validation rule patterns
var (
	// Email validation pattern - structural local@domain.tld check, not full RFC
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail checks whether the email matches the structural pattern
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// CheckPassword validates the password policy: minimum length plus at least
// one digit, one lowercase letter and one uppercase letter. It returns the
// first failed requirement as a human-readable string, or "" when valid.
func CheckPassword(password string) string {
	if len(password) < PasswordMinLength {
		return "password must be at least 6 characters long"
	}

	hasDigit := false
	hasLower := false
	hasUpper := false
	for _, char := range password {
		switch {
		case unicode.IsDigit(char):
			hasDigit = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsUpper(char):
			hasUpper = true
		}
	}

	if !hasDigit {
		return "password must contain at least one digit"
	}
	if !hasLower {
		return "password must contain at least one lowercase letter"
	}
	if !hasUpper {
		return "password must contain at least one uppercase letter"
	}
	return ""
}
