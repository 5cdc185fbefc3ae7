package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for session operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the session",
	Long:  `Log in, register a new account, log out.`,
}
