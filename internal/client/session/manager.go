// Package session хранит текущего пользователя в памяти поверх хранилища сессии.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/storefront/internal/client/storage"
)

// State is a snapshot of the in-memory session
type State struct {
	User          *storage.CachedUser
	Authenticated bool
}

// Manager owns the in-memory view of the session. The store stays the source of truth.
type Manager struct {
	store  storage.SessionStore
	logger *slog.Logger
	user   *storage.CachedUser
	mu     sync.RWMutex
}

// NewManager создает менеджер сессии
func NewManager(store storage.SessionStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:  store,
		logger: logger,
	}
}

// Load restores the session on startup.
// The user counts as authenticated only when both the access token and the cached user are stored.
func (m *Manager) Load(ctx context.Context) (State, error) {
	token, hasToken, err := m.store.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		return State{}, fmt.Errorf("failed to read access token: %w", err)
	}

	user, err := storage.LoadUser(ctx, m.store)
	if err != nil {
		return State{}, fmt.Errorf("failed to load cached user: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !hasToken || token == "" || user == nil {
		m.user = nil
		m.logger.Debug("no stored session", "has_token", hasToken && token != "", "has_user", user != nil)
		return State{}, nil
	}

	m.user = user
	return State{User: copyUser(user), Authenticated: true}, nil
}

// Current returns the current in-memory state
func (m *Manager) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return State{}
	}
	return State{User: copyUser(m.user), Authenticated: true}
}

// Set persists user and publishes it as the current user
func (m *Manager) Set(ctx context.Context, user *storage.CachedUser) error {
	if err := storage.SaveUser(ctx, m.store, user); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = copyUser(user)
	m.mu.Unlock()

	return nil
}

// Clear removes every session key from the store and forgets the user.
// Memory is reset even if the store fails, the error is still returned.
func (m *Manager) Clear(ctx context.Context) error {
	err := m.store.Clear(ctx, storage.AllKeys()...)
	m.Reset()
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Reset forgets the user without touching the store.
// Used as the session-expired hook, where the store is already cleared.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}

func copyUser(user *storage.CachedUser) *storage.CachedUser {
	if user == nil {
		return nil
	}
	c := *user
	return &c
}
