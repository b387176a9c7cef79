package validator

import (
	"regexp"
	"slices"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

func IsValidPassword(password string) bool {
	return len(password) >= minPasswordLen
}

func IsValidName(name string) bool {
	return name != ""
}

// IsAllowedMime checks the declared content type against a whitelist.
func IsAllowedMime(mime string, allowed []string) bool {
	return slices.Contains(allowed, mime)
}

// IsAllowedSize checks an upload size in bytes against a ceiling.
func IsAllowedSize(size int64, max int64) bool {
	return size > 0 && size <= max
}
