package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/storefront/internal/client/storage"
)

// Request describes one API call. It is passed by value and never mutated by the pipeline.
type Request struct {
	Body   any
	Query  url.Values
	Method string
	Path   string
	// Anonymous requests carry no bearer header and never trigger a refresh (login, register).
	Anonymous bool
}

// Response is a successful (2xx) answer
type Response struct {
	Header     http.Header
	Body       []byte
	StatusCode int
}

// Decode unmarshals the JSON body into v; an empty body leaves v untouched
func (r *Response) Decode(v any) error {
	if v == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Send executes req through the authentication pipeline:
// attach the stored access token, and on a 401 refresh it once and retry once.
// Non-2xx answers come back as *ValidationError or *ServerError, transport
// failures as *NetworkError, an unrecoverable session as *AuthExpiredError.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	if req.Anonymous {
		return c.send(ctx, req, 0, "")
	}

	token, _, err := c.store.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read access token: %w", err)
	}

	return c.send(ctx, req, 0, token)
}

// send dispatches one attempt. attempt counts prior refresh-and-retry cycles.
func (c *Client) send(ctx context.Context, req Request, attempt int, token string) (*Response, error) {
	resp, err := c.dispatch(ctx, req, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	if resp.StatusCode == http.StatusUnauthorized && attempt == 0 && !req.Anonymous {
		c.logger.Debug("access token rejected, refreshing", "method", req.Method, "path", req.Path)

		fresh, err := c.refreshAccessToken(ctx, token)
		if err != nil {
			return nil, err
		}
		return c.send(ctx, req, attempt+1, fresh)
	}

	return nil, newStatusError(resp)
}

// dispatch выполняет один HTTP запрос без повторов и обновления токена
func (c *Client) dispatch(ctx context.Context, req Request, token string) (*Response, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		jsonData, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.resolve(req.Path, req.Query), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("HTTP request failed",
			"method", req.Method,
			"path", req.Path,
			"error", err,
		)
		return nil, &NetworkError{Method: req.Method, Path: req.Path, Err: err}
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &NetworkError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Уровень логирования по статусу ответа
	level := slog.LevelDebug
	if httpResp.StatusCode >= 500 {
		level = slog.LevelError
	} else if httpResp.StatusCode >= 400 {
		level = slog.LevelInfo
	}
	c.logger.Log(ctx, level, "HTTP request",
		"method", req.Method,
		"path", req.Path,
		"status", httpResp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", httpReq.Header.Get("X-Request-ID"),
	)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}

// doRequest выполняет запрос через конвейер и декодирует JSON ответ в result
func (c *Client) doRequest(ctx context.Context, req Request, result any) error {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return err
	}
	return resp.Decode(result)
}
