package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/forezy/forezy-go/internal/api"
	"github.com/forezy/forezy-go/internal/model"
	"github.com/forezy/forezy-go/internal/store"
)

// State is the manager's position in the authentication lifecycle.
type State int

const (
	// StateInitializing: persisted session not loaded yet.
	StateInitializing State = iota
	// StateUnauthenticated: no session.
	StateUnauthenticated
	// StateAuthenticating: a login or register call is in flight.
	StateAuthenticating
	// StateAuthenticated: session present.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Redirect is a navigation directive emitted on state transitions. The
// presentation layer subscribes via Redirects; the manager never calls
// into any router itself.
type Redirect string

const (
	// RedirectLogin: the user must re-authenticate.
	RedirectLogin Redirect = "login"
	// RedirectHome: authentication completed, show the main screen.
	RedirectHome Redirect = "home"
	// RedirectVerify: registration succeeded but email verification is
	// pending.
	RedirectVerify Redirect = "verify"
)

// Manager lifecycle errors.
var (
	// ErrAuthInProgress: another login/register call is already in flight.
	ErrAuthInProgress = errors.New("authentication already in progress")

	// ErrAlreadyAuthenticated: login/register called while a session exists.
	ErrAlreadyAuthenticated = errors.New("already authenticated")
)

// Gateway is the network boundary the manager drives. *api.Client
// satisfies it.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, email, password string) (*api.RegisterResponse, error)
}

// RegisterResult distinguishes the two successful registration outcomes.
type RegisterResult struct {
	// NeedsVerification: the account exists but the user must verify
	// their email before logging in. No session was created.
	NeedsVerification bool
}

// Manager owns the in-memory session and mediates all auth operations.
// One instance per process; safe for concurrent use.
type Manager struct {
	gateway Gateway
	store   store.Store
	logger  *slog.Logger

	mu       sync.Mutex
	state    State
	session  *model.Session
	inFlight bool

	redirects chan Redirect
}

// NewManager creates a Manager in the Initializing state. Call Start to
// load any persisted session before use.
func NewManager(gateway Gateway, st store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		gateway:   gateway,
		store:     st,
		logger:    logger,
		state:     StateInitializing,
		redirects: make(chan Redirect, 8),
	}
}

// Start loads the persisted session exactly once and settles into
// Authenticated or Unauthenticated. Calling Start again is a no-op.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateInitializing {
		return nil
	}

	session, err := m.store.Load()
	if err != nil {
		// Treat an unreadable store like an absent session; the user can
		// always log in again.
		m.logger.Warn("failed to load persisted session", "err", err)
		session = nil
	}

	if session != nil {
		m.session = session
		m.state = StateAuthenticated
		m.logger.Info("restored session", "email", session.Email)
	} else {
		m.state = StateUnauthenticated
	}

	return nil
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Authenticated reports whether a session is present.
func (m *Manager) Authenticated() bool {
	return m.State() == StateAuthenticated
}

// Session returns a copy of the current session, if any.
func (m *Manager) Session() (model.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return model.Session{}, false
	}
	return *m.session, true
}

// Token returns the current access token, or "" when unauthenticated.
// Suitable as an api.WithTokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return ""
	}
	return m.session.AccessToken
}

// Redirects returns the navigation event channel. Events are dropped when
// nobody is listening; they are directives, not commands.
func (m *Manager) Redirects() <-chan Redirect {
	return m.redirects
}

// Login authenticates the user. On success the manager is Authenticated
// with a persisted session; on failure no state changes.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidateLoginPassword(password); err != nil {
		return err
	}

	if err := m.beginAuth(); err != nil {
		return err
	}

	resp, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		m.endAuth(nil)
		m.logger.Warn("login failed", "email", email, "err", err)
		return err
	}

	session := resp.ToSession()
	m.endAuth(&session)
	m.persist(&session)
	m.emit(RedirectHome)

	m.logger.Info("login succeeded", "email", session.Email, "user_id", session.UserID)
	return nil
}

// Register creates an account. Depending on the backend response the user
// is either authenticated immediately (exactly as in Login) or directed to
// the verification-pending flow with no session created.
func (m *Manager) Register(ctx context.Context, email, password string) (RegisterResult, error) {
	if err := ValidateEmail(email); err != nil {
		return RegisterResult{}, err
	}
	if err := ValidateRegistrationPassword(password); err != nil {
		return RegisterResult{}, err
	}

	if err := m.beginAuth(); err != nil {
		return RegisterResult{}, err
	}

	resp, err := m.gateway.Register(ctx, email, password)
	if err != nil {
		m.endAuth(nil)
		m.logger.Warn("registration failed", "email", email, "err", err)
		return RegisterResult{}, err
	}

	if resp.NeedsVerification() {
		m.endAuth(nil)
		m.emit(RedirectVerify)
		m.logger.Info("registration pending verification", "email", email)
		return RegisterResult{NeedsVerification: true}, nil
	}

	session := resp.ToSession()
	m.endAuth(&session)
	m.persist(&session)
	m.emit(RedirectHome)

	m.logger.Info("registration succeeded", "email", session.Email, "user_id", session.UserID)
	return RegisterResult{}, nil
}

// Logout clears the session. It always succeeds locally: store failures
// are logged, the in-memory state transition is unconditional.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.session = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.logger.Error("failed to clear persisted session", "err", err)
	}

	m.emit(RedirectLogin)
	m.logger.Info("logged out")
}

// beginAuth transitions Unauthenticated -> Authenticating, enforcing the
// single-flight guard.
func (m *Manager) beginAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inFlight {
		return ErrAuthInProgress
	}
	if m.state == StateAuthenticated {
		return ErrAlreadyAuthenticated
	}

	m.inFlight = true
	m.state = StateAuthenticating
	return nil
}

// endAuth applies the result of an auth call atomically: with a session it
// transitions to Authenticated, without one it falls back to
// Unauthenticated.
func (m *Manager) endAuth(session *model.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inFlight = false
	if session != nil {
		m.session = session
		m.state = StateAuthenticated
	} else {
		m.state = StateUnauthenticated
	}
}

// persist writes the session through to the store. Best effort: the
// in-memory state is authoritative for this process lifetime, persistence
// only matters for the next launch.
func (m *Manager) persist(session *model.Session) {
	if err := m.store.Save(session); err != nil {
		m.logger.Error("failed to persist session", "err", err)
	}
}

// emit sends a redirect without blocking; stale directives are dropped.
func (m *Manager) emit(r Redirect) {
	select {
	case m.redirects <- r:
	default:
		m.logger.Debug("redirect channel full, dropping", "redirect", r)
	}
}

// UserMessage maps an operation error to the message shown to the user.
// Each error kind drives different messaging; none of them retries
// automatically.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthInProgress):
		return "Another sign-in attempt is already in progress."
	case errors.Is(err, ErrAlreadyAuthenticated):
		return "You are already signed in."
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address."
	case errors.Is(err, ErrEmptyPassword):
		return "Please enter your password."
	case errors.Is(err, ErrPasswordSpaces):
		return "Password cannot contain spaces."
	case errors.Is(err, ErrWeakPassword):
		return "Password must be at least 8 characters with upper case, lower case, a number, and a special character."
	}

	switch api.Classify(err) {
	case api.KindEmailNotVerified:
		return "Please verify your email before logging in. Check your inbox for a verification link."
	case api.KindEmailTaken:
		return "An account with this email already exists."
	case api.KindHTTP:
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 500 {
			return "The server encountered an error. Please try again later."
		}
		return "Unable to sign in. Please check your credentials and try again."
	case api.KindMalformed:
		return "Could not process the server response. Please try again."
	default:
		return "Failed to connect to the server. Please check your connection and try again."
	}
}
