package api

import "strings"

// credentials is the request body for POST /users/login and /users/register.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse from POST /users/login (2xx).
type LoginResponse struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	AccessToken string `json:"accessToken"`
}

// RegisterResponse from POST /users/register (2xx). The backend returns one
// of two shapes: a bare identity-provider id {"user_id": "auth0|..."} when
// the account still needs email verification, or a complete user record
// {userId, email, address} when the account is active immediately.
type RegisterResponse struct {
	// ProviderID is set in the verification-pending shape.
	ProviderID string `json:"user_id"`

	// Complete-record shape.
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// NeedsVerification reports whether the response is the identity-provider
// shape that requires the user to verify their email before logging in.
// The "auth0|" prefix is the backend's only signal for this today.
func (r *RegisterResponse) NeedsVerification() bool {
	return strings.HasPrefix(r.ProviderID, "auth0|")
}

// MarketsResponse from GET /markets.
type MarketsResponse struct {
	Markets []APIMarket `json:"markets"`
}

// APIMarket represents a market from the Forezy API.
type APIMarket struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Description string `json:"description"`
	Status      string `json:"status"`

	// Timestamp (ISO 8601)
	ResolutionTime string `json:"resolutionTime"`
}

// SingleMarketResponse from GET /markets/{id}.
type SingleMarketResponse struct {
	Market APIMarket `json:"market"`
}
