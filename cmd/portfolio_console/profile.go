package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bgv/portfolio-console/internal/editor"
	"github.com/bgv/portfolio-console/internal/observability"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the profile record",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the profile",
	RunE:  runProfileUpdate,
}

var (
	profileName     string
	profileTitle    string
	profileEmail    string
	profilePhone    string
	profileLocation string
	profileSummary  string
	profileGitHub   string
	profileLinkedIn string
)

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profileTitle, "title", "", "Professional title")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "Contact email")
	profileUpdateCmd.Flags().StringVar(&profilePhone, "phone", "", "Contact phone")
	profileUpdateCmd.Flags().StringVar(&profileLocation, "location", "", "Location")
	profileUpdateCmd.Flags().StringVar(&profileSummary, "summary", "", "Professional summary")
	profileUpdateCmd.Flags().StringVar(&profileGitHub, "github", "", "GitHub profile URL")
	profileUpdateCmd.Flags().StringVar(&profileLinkedIn, "linkedin", "", "LinkedIn profile URL")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.ProfileDescriptor(env.client))
	if err != nil {
		return err
	}
	records := ed.Records()
	observability.NewPrinter(os.Stdout).PrintProfile(records[0])
	return nil
}

func runProfileUpdate(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.ProfileDescriptor(env.client))
	if err != nil {
		return err
	}

	records := ed.Records()
	profile, err := ed.BeginEdit(records[0].RecordID())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("name") {
		profile.Name = profileName
	}
	if cmd.Flags().Changed("title") {
		profile.Title = profileTitle
	}
	if cmd.Flags().Changed("email") {
		profile.Email = profileEmail
	}
	if cmd.Flags().Changed("phone") {
		profile.Phone = profilePhone
	}
	if cmd.Flags().Changed("location") {
		profile.Location = profileLocation
	}
	if cmd.Flags().Changed("summary") {
		profile.Summary = profileSummary
	}
	if cmd.Flags().Changed("github") {
		profile.GitHub = profileGitHub
	}
	if cmd.Flags().Changed("linkedin") {
		profile.LinkedIn = profileLinkedIn
	}
	return finishSubmit(ed, ed.Submit(cmd.Context(), profile))
}
