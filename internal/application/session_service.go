package application

import (
	"context"
	"errors"
	"sync"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/fincoach/fincoach-cli/internal/ports"
)

const (
	loginFailedMessage    = "Login failed"
	registerFailedMessage = "Registration failed"
)

// SessionService owns the authenticated-session state. All other components
// read snapshots of it; only the four lifecycle operations mutate it.
// Overlapping calls are not serialized: the last one to settle writes the
// final state.
type SessionService struct {
	auth   ports.AuthAPI
	tokens ports.TokenStore

	mu      sync.Mutex
	session domain.Session
}

func NewSessionService(auth ports.AuthAPI, tokens ports.TokenStore) *SessionService {
	return &SessionService{auth: auth, tokens: tokens}
}

// Rehydrate initializes the token from the persisted slot. The user profile
// stays absent until a login or an authenticated profile fetch populates it.
func (s *SessionService) Rehydrate(ctx context.Context) error {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoPersistedToken) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.session.Token = token
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current session state.
func (s *SessionService) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.session
	if s.session.User != nil {
		user := *s.session.User
		snapshot.User = &user
	}
	return snapshot
}

// Token is the token source handed to the transport client.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

func (s *SessionService) Login(ctx context.Context, email, password string) error {
	s.beginAuth()

	grant, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return s.failAuth(err, loginFailedMessage)
	}

	return s.completeAuth(ctx, grant)
}

// Register submits a full registration payload. The backend signs the new
// user in, so success behaves exactly like Login.
func (s *SessionService) Register(ctx context.Context, reg domain.Registration) error {
	s.beginAuth()

	grant, err := s.auth.Register(ctx, reg)
	if err != nil {
		return s.failAuth(err, registerFailedMessage)
	}

	return s.completeAuth(ctx, grant)
}

// Logout clears the session and the persisted token. It never fails; a
// failed removal of the persisted slot is dropped.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	_ = s.tokens.Clear(context.Background())
}

// SetUser replaces the user profile only, after out-of-band profile edits.
func (s *SessionService) SetUser(user domain.UserProfile) {
	s.mu.Lock()
	s.session.User = &user
	s.mu.Unlock()
}

// CurrentUser returns the cached profile, fetching it once from the backend
// when a rehydrated token exists without one.
func (s *SessionService) CurrentUser(ctx context.Context) (domain.UserProfile, error) {
	s.mu.Lock()
	token := s.session.Token
	user := s.session.User
	s.mu.Unlock()

	if user != nil {
		return *user, nil
	}
	if token == "" {
		return domain.UserProfile{}, domain.ErrNotAuthenticated
	}

	fetched, err := s.auth.Me(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}

	s.SetUser(fetched)
	return fetched, nil
}

func (s *SessionService) beginAuth() {
	s.mu.Lock()
	s.session.Loading = true
	s.session.Error = ""
	s.mu.Unlock()
}

// failAuth reduces the failure to one user-facing message and leaves any
// prior token and user untouched.
func (s *SessionService) failAuth(err error, fallback string) error {
	message := fallback
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		message = apiErr.UserMessage(fallback)
	}

	s.mu.Lock()
	s.session.Loading = false
	s.session.Error = message
	s.mu.Unlock()

	return err
}

func (s *SessionService) completeAuth(ctx context.Context, grant domain.AuthGrant) error {
	user := grant.User

	s.mu.Lock()
	s.session = domain.Session{Token: grant.AccessToken, User: &user}
	s.mu.Unlock()

	if err := s.tokens.Save(ctx, grant.AccessToken); err != nil {
		return err
	}
	return nil
}
