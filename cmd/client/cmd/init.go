// cmd/client/cmd/init.go
package cmd

import (
	"userpanel/cmd/client/cmd/auth"
	"userpanel/cmd/client/cmd/user"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	rootCmd.AddCommand(user.UserCmd)
	user.UserCmd.AddCommand(user.ListCmd)
	user.UserCmd.AddCommand(user.CreateCmd)
	user.UserCmd.AddCommand(user.UpdateCmd)
	user.UserCmd.AddCommand(user.DeleteCmd)
}
