package auth

import (
	"regexp"
	"unicode/utf8"
)

const MinPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail: ровно один '@', непустая локальная часть, в домене есть '.'
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLen
}
