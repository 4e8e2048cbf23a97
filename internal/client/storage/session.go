package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/storefront/pkg/api"
)

//go:generate moq -out sessionstore_mock.go . SessionStore

// Key names an entry in the session store
type Key string

const (
	KeyAccessToken  Key = "access_token"
	KeyRefreshToken Key = "refresh_token"
	KeyUser         Key = "user"
)

// AllKeys returns every key the session store owns, in the order they are cleared
func AllKeys() []Key {
	return []Key{KeyAccessToken, KeyRefreshToken, KeyUser}
}

// SessionStore defines durable key-value persistence for the client session.
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// Get returns the value stored under key.
	// A missing key is reported as ok=false with a nil error.
	Get(ctx context.Context, key Key) (value string, ok bool, err error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key Key, value string) error

	// Clear removes all listed keys in one transaction.
	// Either every key is gone afterwards or a *StorageError is returned
	// and nothing was removed.
	Clear(ctx context.Context, keys ...Key) error

	// Close releases the underlying database
	Close() error
}

// Credentials is the access/refresh token pair
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// CachedUser is a display snapshot of the authenticated identity
type CachedUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// DisplayName returns "First Last" when known, otherwise username or email
func (u *CachedUser) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// NewCachedUser converts the API user into the stored snapshot
func NewCachedUser(u *api.User) *CachedUser {
	if u == nil {
		return nil
	}
	return &CachedUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// SaveCredentials stores the token pair.
// The access token goes first so a failure never leaves a refresh token alone.
func SaveCredentials(ctx context.Context, store SessionStore, creds Credentials) error {
	if creds.AccessToken == "" {
		return fmt.Errorf("access token is empty")
	}
	if err := store.Set(ctx, KeyAccessToken, creds.AccessToken); err != nil {
		return err
	}
	if creds.RefreshToken == "" {
		return nil
	}
	return store.Set(ctx, KeyRefreshToken, creds.RefreshToken)
}

// LoadCredentials reads the token pair; missing entries come back empty
func LoadCredentials(ctx context.Context, store SessionStore) (Credentials, error) {
	var creds Credentials

	access, _, err := store.Get(ctx, KeyAccessToken)
	if err != nil {
		return creds, err
	}
	refresh, _, err := store.Get(ctx, KeyRefreshToken)
	if err != nil {
		return creds, err
	}

	creds.AccessToken = access
	creds.RefreshToken = refresh
	return creds, nil
}

// SaveUser serializes the user snapshot to JSON and stores it
func SaveUser(ctx context.Context, store SessionStore, user *CachedUser) error {
	if user == nil {
		return errors.New("user is nil")
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	return store.Set(ctx, KeyUser, string(data))
}

// LoadUser returns the cached user or nil if none is stored
func LoadUser(ctx context.Context, store SessionStore) (*CachedUser, error) {
	raw, ok, err := store.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	user := &CachedUser{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached user: %w", err)
	}
	return user, nil
}
