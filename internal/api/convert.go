package api

import (
	"time"

	"github.com/forezy/forezy-go/internal/model"
)

// ParseTimestamp parses an ISO 8601 timestamp.
// Returns the zero time for empty or invalid input.
func ParseTimestamp(iso string) time.Time {
	if iso == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// Try without timezone
		t, err = time.Parse("2006-01-02T15:04:05", iso)
		if err != nil {
			return time.Time{}
		}
	}

	return t
}

// ToModel converts an APIMarket to model.Market.
func (m *APIMarket) ToModel() model.Market {
	return model.Market{
		ID:             m.ID,
		Question:       m.Question,
		Description:    m.Description,
		Status:         m.Status,
		ResolutionTime: ParseTimestamp(m.ResolutionTime),
	}
}

// ToSession builds the session created by a successful login. A successful
// login implies the email is verified.
func (r *LoginResponse) ToSession() model.Session {
	return model.Session{
		UserID:        r.UserID,
		Email:         r.Email,
		Address:       r.Address,
		AccessToken:   r.AccessToken,
		EmailVerified: true,
	}
}

// ToSession builds the session created by a direct-activation registration.
func (r *RegisterResponse) ToSession() model.Session {
	return model.Session{
		UserID:        r.UserID,
		Email:         r.Email,
		Address:       r.Address,
		EmailVerified: true,
	}
}
