package auth

import (
	"fmt"

	"github.com/iudanet/storefront/internal/validation"
)

// validateRegistration checks the form in the order the user sees the problems
func validateRegistration(in RegisterInput) error {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.PasswordConfirm == "" {
		return ErrMissingFields
	}
	if err := validation.ValidatePasswordConfirm(in.Password, in.PasswordConfirm); err != nil {
		return err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	return nil
}
