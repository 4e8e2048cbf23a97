package shop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type idInput struct {
	ID int64 `validate:"gt=0"`
}

type cartLine struct {
	ID       int64 `validate:"gt=0"`
	Quantity int   `validate:"min=1"`
}

// check validates in and turns validator errors into readable ErrInvalidInput errors
func (s *Service) check(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be positive"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s check", field, fe.Tag())
	}
}

func fieldLabel(name string) string {
	switch name {
	case "ID":
		return "id"
	case "Quantity":
		return "quantity"
	case "ShippingAddress":
		return "shipping address"
	case "PaymentMethod":
		return "payment method"
	default:
		return strings.ToLower(name)
	}
}
