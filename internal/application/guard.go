package application

import "github.com/fincoach/fincoach-cli/internal/domain"

// CanEnter is the route guard: a view may render exactly when a session
// token is present. Pure; recomputed on every command.
func CanEnter(session domain.Session) bool {
	return session.Authenticated()
}

// RequireAuthenticated gates the dashboard-like commands.
func RequireAuthenticated(session domain.Session) error {
	if !CanEnter(session) {
		return domain.ErrNotAuthenticated
	}
	return nil
}

// RequireAnonymous gates login and register, which redirect away while a
// token is already present.
func RequireAnonymous(session domain.Session) error {
	if CanEnter(session) {
		return domain.ErrAlreadyAuthenticated
	}
	return nil
}
