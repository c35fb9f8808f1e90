package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the portfolio backend",
	Long:  "Authenticates against POST /auth/login and persists the session token and user record so later invocations stay logged in.",
	RunE:  runLogin,
}

var (
	loginUsername string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Admin username (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Admin password (defaults to PORTFOLIO_PASSWORD)")

	if err := loginCmd.MarkFlagRequired("username"); err != nil {
		panic(fmt.Sprintf("failed to mark username flag as required: %v", err))
	}

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}

	password := loginPassword
	if password == "" {
		password = os.Getenv("PORTFOLIO_PASSWORD")
	}
	if password == "" {
		return fmt.Errorf("no password given: set --password or PORTFOLIO_PASSWORD")
	}

	status := env.store.Login(cmd.Context(), env.client, loginUsername, password)
	if !status.Success {
		return fmt.Errorf("login failed: %s", status.Message)
	}

	user := env.store.User()
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", status.Message)
	if user != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Logged in as %s (%s)\n", user.Username, user.Role)
	}
	return nil
}
