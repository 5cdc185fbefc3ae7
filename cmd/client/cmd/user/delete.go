// cmd/client/cmd/user/delete.go
package user

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"userpanel/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Long: `Delete an account by id. Asks for confirmation first unless --yes
is given; deleting an id the backend no longer knows succeeds quietly.`,
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

		if err := app.Synchronizer().Remove(cmd.Context(), id); err != nil {
			switch {
			case errors.Is(err, client.ErrCancelled):
				fmt.Println("Cancelled.")
				return nil
			case errors.Is(err, client.ErrAuth):
				return fmt.Errorf("session expired. Run: userpanel auth login")
			}
			return fmt.Errorf("failed to delete account: %w", err)
		}

		color.Green("Account %d deleted.", id)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&SkipConfirm, "yes", "y", false, "skip the confirmation prompt")
}
