package store

import "github.com/forezy/forezy-go/internal/model"

// Store is durable key-value persistence for exactly one session.
type Store interface {
	// Save replaces the stored session.
	Save(session *model.Session) error

	// Load returns the stored session, or (nil, nil) when none is stored
	// or the stored value cannot be read back.
	Load() (*model.Session, error)

	// Clear removes the stored session. Clearing an empty store is a no-op.
	Clear() error
}
