// Package session implements the client-side session manager.
//
// The Manager is the single source of truth for "is a user logged in" and
// the only component allowed to mutate session state. It orchestrates the
// API gateway, writes through to the session store, and emits navigation
// redirects as events instead of calling into any UI layer.
//
// State machine:
//
//	Initializing -> Authenticated   (persisted session found on Start)
//	Initializing -> Unauthenticated (no persisted session)
//	Unauthenticated -> Authenticating -> Authenticated (login / register)
//	Authenticated -> Unauthenticated (logout)
//
// At most one authentication operation is in flight at a time; additional
// calls during Authenticating are rejected with ErrAuthInProgress.
package session
