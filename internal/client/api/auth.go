package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/storefront/pkg/api"
)

// Login обменивает username и пароль на пару токенов
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, Request{
		Method:    http.MethodPost,
		Path:      "login/",
		Body:      req,
		Anonymous: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, Request{
		Method:    http.MethodPost,
		Path:      "register/",
		Body:      req,
		Anonymous: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}
