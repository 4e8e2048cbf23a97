package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/storefront/internal/client/storage"
	"github.com/iudanet/storefront/pkg/api"
)

const (
	refreshPath = "token/refresh/"
	refreshKey  = "refresh"
)

// refreshAccessToken returns an access token to retry with after rejected got a 401.
// Concurrent callers share one refresh call.
func (c *Client) refreshAccessToken(ctx context.Context, rejected string) (string, error) {
	// Обновление не должно обрываться отменой контекста первого из ожидающих
	ch := c.refreshGroup.DoChan(refreshKey, func() (any, error) {
		flightCtx := context.WithoutCancel(ctx)

		// Другой вызов мог уже обновить токен, пока этот ждал ответа
		current, _, err := c.store.Get(flightCtx, storage.KeyAccessToken)
		if err != nil {
			return "", fmt.Errorf("failed to read access token: %w", err)
		}
		if current != "" && current != rejected {
			c.logger.Debug("access token already refreshed by a concurrent call")
			return current, nil
		}

		return c.refresh(flightCtx)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// refresh exchanges the stored refresh token for a new access token and persists it.
// On failure the whole session is cleared.
func (c *Client) refresh(ctx context.Context) (string, error) {
	refreshToken, ok, err := c.store.Get(ctx, storage.KeyRefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to read refresh token: %w", err)
	}
	if !ok || refreshToken == "" {
		c.logger.Info("no refresh token stored, session cannot be renewed")
		return "", &AuthExpiredError{Err: ErrNoRefreshToken}
	}

	resp, err := c.RefreshToken(ctx, refreshToken)
	if err == nil && resp.Access == "" {
		err = errors.New("refresh response has no access token")
	}
	if err != nil {
		c.logger.Warn("token refresh failed, clearing session", "error", err)
		return "", &AuthExpiredError{Err: c.expireSession(ctx, err)}
	}

	if err := storage.SaveCredentials(ctx, c.store, storage.Credentials{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh, // пусто, если сервер не ротирует refresh token
	}); err != nil {
		return "", fmt.Errorf("failed to save refreshed tokens: %w", err)
	}

	c.logger.Info("access token refreshed", "rotated", resp.Refresh != "")
	return resp.Access, nil
}

// expireSession clears every session key and fires the expiry hook.
// A failed clear is joined to cause so the caller does not assume logout happened.
func (c *Client) expireSession(ctx context.Context, cause error) error {
	if err := c.store.Clear(ctx, storage.AllKeys()...); err != nil {
		c.logger.Error("failed to clear session after refresh failure", "error", err)
		return errors.Join(cause, err)
	}

	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
	return cause
}

// RefreshToken обменивает refresh token на новый access token.
// The call bypasses the authentication pipeline so a 401 here never triggers another refresh.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*api.RefreshResponse, error) {
	req := Request{
		Method:    http.MethodPost,
		Path:      refreshPath,
		Body:      api.RefreshRequest{Refresh: refreshToken},
		Anonymous: true,
	}

	resp, err := c.dispatch(ctx, req, "")
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("refresh request failed: %w", newStatusError(resp))
	}

	var result api.RefreshResponse
	if err := resp.Decode(&result); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &result, nil
}
