package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/storefront/pkg/api"
)

// Profile возвращает профиль текущего пользователя
func (c *Client) Profile(ctx context.Context) (*api.User, error) {
	var user api.User
	if err := c.doRequest(ctx, Request{Method: http.MethodGet, Path: "profile/"}, &user); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &user, nil
}

// UpdateProfile частично обновляет профиль (PATCH)
func (c *Client) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.User, error) {
	var user api.User
	err := c.doRequest(ctx, Request{
		Method: http.MethodPatch,
		Path:   "profile/",
		Body:   req,
	}, &user)
	if err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &user, nil
}
