// cmd/client/cmd/user/create.go
package user

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"userpanel/internal/app/client"
)

var (
	createName  string
	createEmail string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new account",
	Long: `Open the account form in create mode: name, email and password are
required, the password at least 6 characters.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		scanner := bufio.NewScanner(os.Stdin)

		if createName == "" {
			fmt.Print("Name: ")
			if scanner.Scan() {
				createName = scanner.Text()
			}
		}

		if createEmail == "" {
			fmt.Print("Email: ")
			if scanner.Scan() {
				createEmail = scanner.Text()
			}
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		edit := app.EditSession()
		edit.OpenCreate()

		err = edit.Submit(cmd.Context(), client.FormInput{
			Name:     createName,
			Email:    createEmail,
			Password: string(password),
		})
		if err != nil {
			// The form stays open on failure; in a one-shot command that
			// just means the user re-runs it.
			edit.Cancel()

			switch {
			case errors.Is(err, client.ErrConflict):
				return fmt.Errorf("this email is already registered")
			case errors.Is(err, client.ErrAuth):
				return fmt.Errorf("session expired. Run: userpanel auth login")
			}
			return fmt.Errorf("failed to create account: %w", err)
		}

		color.Green("Account created.")
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createName, "name", "n", "", "display name")
	CreateCmd.Flags().StringVarP(&createEmail, "email", "e", "", "email address")
}
