package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bgv/portfolio-console/internal/composer"
	"github.com/bgv/portfolio-console/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the public portfolio view",
	Long:  "Fetches all five collections in parallel and renders the read-only view. If any fetch fails, nothing is shown; re-run to retry.",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}

	view, err := composer.Load(cmd.Context(), env.client)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(view.Profile)
	printer.PrintSkills(view.Skills)
	printer.PrintProjects(view.Projects)
	printer.PrintExperience(view.Experience)
	printer.PrintEducation(view.Education)
	return nil
}
