package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionServiceLoginPopulatesSessionAndPersistsToken(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{grant: domain.AuthGrant{
		AccessToken: "T1",
		User:        domain.UserProfile{ID: 1, FullName: "A", Email: "a@example.com"},
	}}
	tokens := &inMemoryTokenStore{}
	svc := NewSessionService(auth, tokens)

	require.NoError(t, svc.Login(context.Background(), "a@example.com", "pw"))

	session := svc.Snapshot()
	assert.Equal(t, "T1", session.Token)
	require.NotNil(t, session.User)
	assert.Equal(t, "A", session.User.FullName)
	assert.False(t, session.Loading)
	assert.Empty(t, session.Error)
	assert.Equal(t, "T1", tokens.token)
	assert.True(t, session.Authenticated())
}

func TestSessionServiceLoginFailureKeepsBackendDetail(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{err: &domain.APIError{
		Kind:       domain.ErrorKindAuth,
		Message:    "Incorrect email or password",
		StatusCode: 401,
	}}
	svc := NewSessionService(auth, &inMemoryTokenStore{})

	err := svc.Login(context.Background(), "a@example.com", "bad")
	require.Error(t, err)

	session := svc.Snapshot()
	assert.Equal(t, "Incorrect email or password", session.Error)
	assert.False(t, session.Loading)
	assert.Empty(t, session.Token)
	assert.Nil(t, session.User)
}

func TestSessionServiceLoginFailureFallsBackToGenericMessage(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{err: errors.New("connection refused")}
	svc := NewSessionService(auth, &inMemoryTokenStore{})

	err := svc.Login(context.Background(), "a@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, "Login failed", svc.Snapshot().Error)
}

func TestSessionServiceRegisterBehavesLikeLogin(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{grant: domain.AuthGrant{
		AccessToken: "T2",
		User:        domain.UserProfile{ID: 7, FullName: "New User"},
	}}
	tokens := &inMemoryTokenStore{}
	svc := NewSessionService(auth, tokens)

	require.NoError(t, svc.Register(context.Background(), domain.Registration{
		FullName: "New User",
		Email:    "new@example.com",
		Password: "pw",
	}))

	session := svc.Snapshot()
	assert.Equal(t, "T2", session.Token)
	require.NotNil(t, session.User)
	assert.Equal(t, "New User", session.User.FullName)
	assert.Equal(t, "T2", tokens.token)
}

func TestSessionServiceRegisterFailureFallsBackToGenericMessage(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{err: errors.New("connection refused")}
	svc := NewSessionService(auth, &inMemoryTokenStore{})

	err := svc.Register(context.Background(), domain.Registration{})
	require.Error(t, err)
	assert.Equal(t, "Registration failed", svc.Snapshot().Error)
}

func TestSessionServiceLogoutClearsSessionAndPersistedToken(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{grant: domain.AuthGrant{AccessToken: "T1", User: domain.UserProfile{FullName: "A"}}}
	tokens := &inMemoryTokenStore{}
	svc := NewSessionService(auth, tokens)
	require.NoError(t, svc.Login(context.Background(), "a@example.com", "pw"))

	svc.Logout()

	session := svc.Snapshot()
	assert.Empty(t, session.Token)
	assert.Nil(t, session.User)
	assert.False(t, session.Authenticated())
	assert.Empty(t, tokens.token)
	assert.True(t, tokens.cleared)
}

func TestSessionServiceLogoutSwallowsClearFailure(t *testing.T) {
	t.Parallel()

	tokens := &inMemoryTokenStore{clearErr: errors.New("read-only filesystem")}
	svc := NewSessionService(&fakeAuthAPI{}, tokens)

	svc.Logout()
	assert.False(t, svc.Snapshot().Authenticated())
}

func TestSessionServiceRehydrateRestoresTokenWithoutUser(t *testing.T) {
	t.Parallel()

	tokens := &inMemoryTokenStore{token: "persisted-token"}
	svc := NewSessionService(&fakeAuthAPI{}, tokens)

	require.NoError(t, svc.Rehydrate(context.Background()))

	session := svc.Snapshot()
	assert.Equal(t, "persisted-token", session.Token)
	assert.Nil(t, session.User)
	assert.True(t, session.Authenticated())
}

func TestSessionServiceRehydrateWithoutPersistedTokenIsNoop(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(&fakeAuthAPI{}, &inMemoryTokenStore{})
	require.NoError(t, svc.Rehydrate(context.Background()))
	assert.False(t, svc.Snapshot().Authenticated())
}

func TestSessionServiceCurrentUserFetchesProfileOnceAfterRehydrate(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{me: domain.UserProfile{ID: 3, FullName: "Restored"}}
	svc := NewSessionService(auth, &inMemoryTokenStore{token: "persisted"})
	require.NoError(t, svc.Rehydrate(context.Background()))

	user, err := svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Restored", user.FullName)

	user, err = svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Restored", user.FullName)
	assert.Equal(t, int32(1), auth.meCalls.Load())
}

func TestSessionServiceCurrentUserWithoutTokenFails(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(&fakeAuthAPI{}, &inMemoryTokenStore{})
	_, err := svc.CurrentUser(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestSessionServiceSetUserReplacesProfileOnly(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{grant: domain.AuthGrant{AccessToken: "T1", User: domain.UserProfile{FullName: "A"}}}
	svc := NewSessionService(auth, &inMemoryTokenStore{})
	require.NoError(t, svc.Login(context.Background(), "a@example.com", "pw"))

	svc.SetUser(domain.UserProfile{FullName: "A Renamed"})

	session := svc.Snapshot()
	assert.Equal(t, "T1", session.Token)
	assert.Equal(t, "A Renamed", session.User.FullName)
}

func TestSessionServiceSnapshotCopiesUser(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{grant: domain.AuthGrant{AccessToken: "T1", User: domain.UserProfile{FullName: "A"}}}
	svc := NewSessionService(auth, &inMemoryTokenStore{})
	require.NoError(t, svc.Login(context.Background(), "a@example.com", "pw"))

	snapshot := svc.Snapshot()
	snapshot.User.FullName = "mutated"

	assert.Equal(t, "A", svc.Snapshot().User.FullName)
}

type fakeAuthAPI struct {
	grant   domain.AuthGrant
	me      domain.UserProfile
	err     error
	meCalls atomic.Int32
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (domain.AuthGrant, error) {
	if f.err != nil {
		return domain.AuthGrant{}, f.err
	}
	return f.grant, nil
}

func (f *fakeAuthAPI) Register(context.Context, domain.Registration) (domain.AuthGrant, error) {
	if f.err != nil {
		return domain.AuthGrant{}, f.err
	}
	return f.grant, nil
}

func (f *fakeAuthAPI) Me(context.Context) (domain.UserProfile, error) {
	f.meCalls.Add(1)
	if f.err != nil {
		return domain.UserProfile{}, f.err
	}
	return f.me, nil
}

type inMemoryTokenStore struct {
	token    string
	cleared  bool
	clearErr error
}

func (s *inMemoryTokenStore) Load(context.Context) (string, error) {
	if s.token == "" {
		return "", domain.ErrNoPersistedToken
	}
	return s.token, nil
}

func (s *inMemoryTokenStore) Save(_ context.Context, token string) error {
	s.token = token
	return nil
}

func (s *inMemoryTokenStore) Clear(context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token = ""
	s.cleared = true
	return nil
}
