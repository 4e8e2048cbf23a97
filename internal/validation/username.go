package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// UsernamePattern определяет допустимый формат username на стороне бэкенда:
// буквы, цифры и символы @ . + - _
var UsernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// MaxUsernameLen максимальная длина username
const MaxUsernameLen = 150

// ValidateUsername проверяет, что username соответствует требованиям бэкенда
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if utf8.RuneCountInString(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, and @/./+/-/_ characters")
	}

	return nil
}
