package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"userpanel/cmd/client/cmd/types"
	"userpanel/internal/app/client"
)

// SkipConfirm is set by --yes on the delete command; the root command's
// confirmation gate reads it.
var SkipConfirm bool

// UserCmd is the parent command for account operations.
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
	Long:  `List, search, create, edit and delete user accounts.`,
}

// appFromContext pulls the initialized client out of the command context and
// applies the protected-route policy: no session means no account data.
func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("client is not initialized")
	}

	if app.Guard().Decide(client.RouteProtected) == client.RedirectToLogin {
		return nil, fmt.Errorf("authentication required. Run: userpanel auth login")
	}

	return app, nil
}
