package model

import "time"

// Market statuses as reported by the backend.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Market represents a tradeable prediction market.
type Market struct {
	ID             string    // Primary key, backend-assigned
	Question       string    // Display question (e.g., "Will X happen by Y?")
	Description    string    // Longer description
	Status         string    // "open" or "closed"
	ResolutionTime time.Time // When the market resolves
}

// Open reports whether the market accepts predictions at the given time:
// status is open and resolution is strictly in the future.
func (m Market) Open(now time.Time) bool {
	return m.Status == StatusOpen && m.ResolutionTime.After(now)
}

// Session is the authenticated user's identity and token. Exactly one
// session exists at a time; it is held in memory while authenticated and
// mirrored to durable storage as a single JSON record.
type Session struct {
	UserID        string `json:"userId"`  // Backend-assigned, immutable
	Email         string `json:"email"`   // Login key, unique per account
	Address       string `json:"address"` // Wallet address, backend-assigned
	AccessToken   string `json:"accessToken,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
}
