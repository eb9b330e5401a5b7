package cmd

import (
	"github.com/fincoach/fincoach-cli/internal/application"
	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

// requireAuth gates a dashboard command on the route guard and resolves
// the profile the view's fetch plan needs as input, repopulating it from
// the backend when only a rehydrated token is present.
func requireAuth(cmd *cobra.Command, app *app) (domain.UserProfile, error) {
	if err := application.RequireAuthenticated(app.session.Snapshot()); err != nil {
		return domain.UserProfile{}, err
	}

	return app.session.CurrentUser(cmd.Context())
}

// requireAnon gates login and register while a token is already present.
func requireAnon(app *app) error {
	return application.RequireAnonymous(app.session.Snapshot())
}
