package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the persisted session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(_ *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}

	env.store.Logout()
	_, _ = fmt.Fprintln(os.Stdout, "Logged out")
	return nil
}
