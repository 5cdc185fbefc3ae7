// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"userpanel/cmd/client/cmd/types"
	"userpanel/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the backend",
	Long: `Authenticate against the backend.

On success the session token is stored locally and attached to every
subsequent request automatically.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		if app.Guard().Decide(client.RouteGuestOnly) == client.RedirectToUsers {
			color.Yellow("Already logged in. Try: userpanel user list")
			return nil
		}

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Login(ctx, email, string(password)); err != nil {
			if errors.Is(err, client.ErrAuth) {
				return fmt.Errorf("invalid credentials, check your email and password")
			}
			return fmt.Errorf("login failed: %w", err)
		}

		color.Green("Logged in.")
		return nil
	},
}
