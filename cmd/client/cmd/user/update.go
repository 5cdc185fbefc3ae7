// cmd/client/cmd/user/update.go
package user

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"userpanel/internal/app/client"
	"userpanel/internal/domain/user"
)

var (
	updatePage   int
	updateSearch string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit an account",
	Long: `Open the account form in edit mode, pre-filled with the current
name and email. Press Enter to keep a value. The password is not changed
through this form.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid account id: %s", args[0])
		}

		syncer := app.Synchronizer()
		query := client.QueryState{Page: updatePage, Search: updateSearch}
		if err := syncer.Refresh(cmd.Context(), query); err != nil {
			if errors.Is(err, client.ErrAuth) {
				return fmt.Errorf("session expired. Run: userpanel auth login")
			}
			return fmt.Errorf("failed to fetch accounts: %w", err)
		}

		var target user.User
		found := false
		for _, u := range syncer.Users() {
			if u.ID == id {
				target = u
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("account %d is not on this page; adjust --page or --search", id)
		}

		edit := app.EditSession()
		edit.OpenEdit(target)

		scanner := bufio.NewScanner(os.Stdin)

		fmt.Printf("Name [%s]: ", target.Name)
		name := target.Name
		if scanner.Scan() && scanner.Text() != "" {
			name = scanner.Text()
		}

		fmt.Printf("Email [%s]: ", target.Email)
		email := target.Email
		if scanner.Scan() && scanner.Text() != "" {
			email = scanner.Text()
		}

		err = edit.Submit(cmd.Context(), client.FormInput{
			Name:  name,
			Email: email,
		})
		if err != nil {
			edit.Cancel()

			if errors.Is(err, client.ErrAuth) {
				return fmt.Errorf("session expired. Run: userpanel auth login")
			}
			return fmt.Errorf("failed to update account: %w", err)
		}

		color.Green("Account %d updated.", id)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().IntVarP(&updatePage, "page", "p", 1, "page the account is listed on")
	UpdateCmd.Flags().StringVarP(&updateSearch, "search", "q", "", "search text locating the account")
}
