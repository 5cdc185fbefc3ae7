// cmd/client/cmd/auth/register.go
package auth

import (
	"bufio"
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
	"userpanel/internal/domain/user"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Create a new account on the backend.

After registering, log in with the same credentials.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		if app.Guard().Decide(client.RouteGuestOnly) == client.RedirectToUsers {
			color.Yellow("Already logged in. Try: userpanel user list")
			return nil
		}

		scanner := bufio.NewScanner(os.Stdin)

		fmt.Print("Name: ")
		var name string
		if scanner.Scan() {
			name = scanner.Text()
		}

		fmt.Print("Email: ")
		var email string
		if scanner.Scan() {
			email = scanner.Text()
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		_, err = app.Register(ctx, user.CreateRequest{
			Name:     name,
			Email:    email,
			Password: string(password),
		})
		if err != nil {
			if errors.Is(err, client.ErrConflict) {
				return fmt.Errorf("this email is already registered")
			}
			return fmt.Errorf("registration failed: %w", err)
		}

		color.Green("Account created.")
		fmt.Println("You can now log in: userpanel auth login")
		return nil
	},
}
