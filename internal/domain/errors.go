package domain

import "errors"

var (
	ErrNotAuthenticated     = errors.New("not authenticated, run `fincoach login` first")
	ErrAlreadyAuthenticated = errors.New("already authenticated, run `fincoach logout` first")
	ErrTaskInProgress       = errors.New("a task is already executing")
	ErrNoPersistedToken     = errors.New("no persisted token")
)
