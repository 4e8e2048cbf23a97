// Package auth реализует вход, регистрацию и выход поверх конвейера запросов.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/session"
	"github.com/iudanet/storefront/internal/client/storage"
	"github.com/iudanet/storefront/internal/config"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

var (
	// ErrMissingCredentials возвращается, если username или пароль не заполнены
	ErrMissingCredentials = errors.New("please fill in all fields")
	// ErrMissingFields возвращается, если не заполнены обязательные поля регистрации
	ErrMissingFields = errors.New("please fill in all required fields")
)

// API is the subset of the backend client the auth flows need
type API interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Profile(ctx context.Context) (*pkgapi.User, error)
}

var _ API = (*api.Client)(nil)

// Service предоставляет функции авторизации
type Service struct {
	api     API
	store   storage.SessionStore
	session *session.Manager
	logger  *slog.Logger
	policy  config.RegistrationPolicy
}

// NewService создает новый сервис авторизации
func NewService(
	apiClient API,
	store storage.SessionStore,
	sessions *session.Manager,
	policy config.RegistrationPolicy,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if policy == "" {
		policy = config.RegistrationManual
	}
	return &Service{
		api:     apiClient,
		store:   store,
		session: sessions,
		policy:  policy,
		logger:  logger,
	}
}

// Login выполняет аутентификацию и сохраняет сессию.
// If the backend omits the user, the profile is fetched with the new token;
// a failed profile fetch leaves the user nil without failing the login.
func (s *Service) Login(ctx context.Context, username, password string) (*storage.CachedUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	user, err := s.establish(ctx, resp.Access, resp.Refresh, resp.User)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	s.logger.Info("logged in", "user_id", userID(user))
	return user, nil
}

// RegisterInput содержит данные формы регистрации
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// RegisterResult описывает исход регистрации
type RegisterResult struct {
	// User is set when the client ended up logged in
	User *storage.CachedUser
	// UserID is the id the backend assigned when it returned no tokens
	UserID int64
	// LoggedIn is false when the user still has to run login
	LoggedIn bool
}

// Register проверяет форму, регистрирует пользователя и, если возможно, входит в систему
func (s *Service) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	resp, err := s.api.Register(ctx, pkgapi.RegisterRequest{
		Username:        in.Username,
		Email:           in.Email,
		Password:        in.Password,
		PasswordConfirm: in.PasswordConfirm,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if resp.HasTokens() {
		user, err := s.establish(ctx, resp.Access, resp.Refresh, resp.User)
		if err != nil {
			return nil, fmt.Errorf("registration succeeded but saving the session failed: %w", err)
		}
		s.logger.Info("registered and logged in", "user_id", userID(user))
		return &RegisterResult{User: user, UserID: userID(user), LoggedIn: true}, nil
	}

	id := resp.ID
	if id == 0 && resp.User != nil {
		id = resp.User.ID
	}

	if s.policy == config.RegistrationAutoLogin {
		user, err := s.Login(ctx, in.Username, in.Password)
		if err != nil {
			return &RegisterResult{UserID: id}, fmt.Errorf("registered, but automatic login failed: %w", err)
		}
		return &RegisterResult{User: user, UserID: id, LoggedIn: true}, nil
	}

	s.logger.Info("registered, login required", "user_id", id)
	return &RegisterResult{UserID: id}, nil
}

// Logout удаляет локальную сессию
func (s *Service) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	s.logger.Info("logged out")
	return nil
}

// establish persists the tokens and the user and publishes the session
func (s *Service) establish(ctx context.Context, access, refresh string, apiUser *pkgapi.User) (*storage.CachedUser, error) {
	if access == "" {
		return nil, errors.New("server returned no access token")
	}

	if err := storage.SaveCredentials(ctx, s.store, storage.Credentials{
		AccessToken:  access,
		RefreshToken: refresh,
	}); err != nil {
		return nil, err
	}
	if refresh == "" {
		// Старый refresh token от прошлой сессии не должен пережить новый вход
		if err := s.store.Clear(ctx, storage.KeyRefreshToken); err != nil {
			return nil, err
		}
	}

	if apiUser == nil {
		// Пользователь прошлой сессии не должен остаться рядом с новыми токенами
		if err := s.store.Clear(ctx, storage.KeyUser); err != nil {
			return nil, err
		}
		s.session.Reset()

		profile, err := s.api.Profile(ctx)
		if err != nil {
			s.logger.Warn("failed to fetch user profile after login", "error", err)
			return nil, nil
		}
		apiUser = profile
	}

	user := storage.NewCachedUser(apiUser)
	if err := s.session.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

func userID(u *storage.CachedUser) int64 {
	if u == nil {
		return 0
	}
	return u.ID
}
