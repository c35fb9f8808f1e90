package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect the persisted session",
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session is present and whom it belongs to",
	RunE:  runSessionStatus,
}

func init() {
	sessionCmd.AddCommand(sessionStatusCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionStatus(_ *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}

	if !env.store.IsAuthenticated() {
		_, _ = fmt.Fprintln(os.Stdout, "Not logged in")
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, "Logged in")
	if user := env.store.User(); user != nil {
		_, _ = fmt.Fprintf(os.Stdout, "User:   %s (%s)\n", user.Username, user.Role)
	}
	// Expiry is informational only; the session stays "authenticated" until
	// the backend rejects the token.
	if expiry, ok := env.store.TokenExpiry(); ok {
		_, _ = fmt.Fprintf(os.Stdout, "Token expires: %s\n", expiry.Local().Format(time.RFC1123))
	}
	return nil
}
