package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse представляет ответ с токенами доступа.
// User присутствует не у всех бэкендов.
type TokenResponse struct {
	User    *User  `json:"user,omitempty"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
}

// RegisterResponse представляет ответ на регистрацию.
// Сервер возвращает либо токены (и пользователя), либо только id созданного пользователя.
type RegisterResponse struct {
	User    *User  `json:"user,omitempty"`
	Access  string `json:"access,omitempty"`
	Refresh string `json:"refresh,omitempty"`
	ID      int64  `json:"id,omitempty"`
}

// HasTokens reports whether the server logged the new user in
func (r *RegisterResponse) HasTokens() bool {
	return r.Access != "" && r.Refresh != ""
}

// RefreshRequest представляет запрос на обновление access token
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries the new access token and, with rotation enabled, a new refresh token
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// User представляет профиль пользователя
type User struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	ID        int64  `json:"id"`
}

// UpdateProfileRequest contains the mutable profile fields; nil fields are not sent
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Detail  string `json:"detail,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
