package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/storefront/internal/client/storage"
)

// Status describes the stored session
type Status struct {
	User *storage.CachedUser
	// ExpiresAt is the access token expiry; nil when the token is opaque or carries no exp
	ExpiresAt     *time.Time
	Authenticated bool
	// HasRefreshToken reports whether an expired access token can still be renewed
	HasRefreshToken bool
}

// Expired reports whether the access token is known to be past its expiry
func (s *Status) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// Status reloads the session from the store and inspects the access token
func (s *Service) Status(ctx context.Context) (*Status, error) {
	state, err := s.session.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	creds, err := storage.LoadCredentials(ctx, s.store)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	status := &Status{
		Authenticated:   state.Authenticated,
		User:            state.User,
		HasRefreshToken: creds.RefreshToken != "",
	}
	if state.Authenticated {
		status.ExpiresAt = tokenExpiry(creds.AccessToken)
	}
	return status, nil
}

// tokenExpiry reads exp from a JWT without verifying the signature.
// The client has no key to verify with; the value is informational only.
func tokenExpiry(token string) *time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	exp := claims.ExpiresAt.Time
	return &exp
}
