package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateEmail проверяет формат email; окончательно адрес проверяет сервер
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if err := validate.Var(email, "email"); err != nil {
		return fmt.Errorf("email %q is not a valid address", email)
	}

	return nil
}
