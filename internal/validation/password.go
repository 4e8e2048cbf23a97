package validation

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MinPasswordLen минимальная длина пароля при регистрации
const MinPasswordLen = 8

// ErrPasswordMismatch возвращается, когда пароль и подтверждение различаются
var ErrPasswordMismatch = errors.New("passwords do not match")

// ValidatePassword проверяет минимальные требования к паролю.
// Длина считается в символах, а не в байтах.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	return nil
}

// ValidatePasswordConfirm checks that the confirmation repeats the password exactly
func ValidatePasswordConfirm(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
