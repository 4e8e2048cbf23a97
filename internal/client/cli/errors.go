package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iudanet/storefront/internal/client/api"
)

// ErrNotAuthenticated is returned by commands that need a logged in user
var ErrNotAuthenticated = errors.New("not authenticated. Please run 'storefront login' first")

// Describe turns an error into the message shown to the user
func Describe(err error) string {
	var (
		netErr        *api.NetworkError
		validationErr *api.ValidationError
	)

	switch {
	case err == nil:
		return ""
	case api.IsAuthExpired(err):
		return "Your session has ended. Please run 'storefront login' again."
	case errors.As(err, &netErr):
		return fmt.Sprintf("Cannot reach the server (%s %s): %v", netErr.Method, netErr.Path, netErr.Err)
	case errors.As(err, &validationErr) && len(validationErr.Fields) > 0 && validationErr.Message == "":
		return "Request rejected:\n" + formatFieldErrors(validationErr.Fields)
	default:
		return err.Error()
	}
}

func formatFieldErrors(fields map[string][]string) string {
	var out string
	for _, name := range sortedKeys(fields) {
		for _, msg := range fields[name] {
			out += fmt.Sprintf("  %s: %s\n", name, msg)
		}
	}
	return out
}

// parseID разбирает положительный числовой идентификатор из аргумента
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive number", what, arg)
	}
	return id, nil
}
