// cmd/client/cmd/user/list.go
package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"userpanel/internal/app/client"
	"userpanel/internal/domain/user"
)

var (
	listPage   int
	listSearch string
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Long: `Show one page of accounts, optionally filtered by search text.

Changing --page or --search replaces the list wholesale with the result of
the new query.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		syncer := app.Synchronizer()
		query := client.QueryState{Page: listPage, Search: listSearch}

		if err := syncer.Refresh(cmd.Context(), query); err != nil {
			if errors.Is(err, client.ErrAuth) {
				return fmt.Errorf("session expired. Run: userpanel auth login")
			}
			return fmt.Errorf("failed to fetch accounts: %w", err)
		}

		users := syncer.Users()

		switch listFormat {
		case "json":
			return printUsersJSON(users)
		default:
			return printUsersTable(users, query)
		}
	},
}

func printUsersTable(users []user.User, query client.QueryState) error {
	if len(users) == 0 {
		fmt.Println("No accounts found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCREATED")

	for _, u := range users {
		created := u.CreatedAt
		if created == "" {
			created = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, created)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nPage %d", query.Page)
	if query.Search != "" {
		fmt.Printf(", search %q", query.Search)
	}
	fmt.Printf(" - %d account(s)\n", len(users))

	return nil
}

func printUsersJSON(users []user.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}

func init() {
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	ListCmd.Flags().StringVarP(&listSearch, "search", "q", "", "search text")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")
}
