package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Login authenticates against POST /users/login. The caller is responsible
// for input validation; this method only translates the HTTP exchange into
// a typed result.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body, err := c.post(ctx, "/users/login", credentials{Email: email, Password: password})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && mentionsUnverifiedEmail(apiErr.Body) {
			return nil, fmt.Errorf("login %s: %w", email, ErrEmailNotVerified)
		}
		return nil, fmt.Errorf("login %s: %w", email, err)
	}

	var resp LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Reason: "unmarshal login response", Err: err}
	}
	if resp.UserID == "" || resp.Email == "" {
		return nil, &DecodeError{Reason: "login response missing userId or email"}
	}

	return &resp, nil
}

// Register creates an account via POST /users/register. Check
// NeedsVerification on the result to distinguish the two success shapes.
func (c *Client) Register(ctx context.Context, email, password string) (*RegisterResponse, error) {
	body, err := c.post(ctx, "/users/register", credentials{Email: email, Password: password})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && mentionsEmailTaken(apiErr.StatusCode, apiErr.Body) {
			return nil, fmt.Errorf("register %s: %w", email, ErrEmailTaken)
		}
		return nil, fmt.Errorf("register %s: %w", email, err)
	}

	var resp RegisterResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Reason: "unmarshal register response", Err: err}
	}
	if resp.NeedsVerification() {
		return &resp, nil
	}
	if resp.UserID == "" || resp.Email == "" {
		return nil, &DecodeError{Reason: "register response missing userId or email"}
	}

	return &resp, nil
}
