package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bgv/portfolio-console/internal/editor"
	"github.com/bgv/portfolio-console/internal/observability"
	"github.com/bgv/portfolio-console/internal/types"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Manage the work-experience collection",
}

var experienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all experience entries",
	RunE:  runExperienceList,
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an experience entry",
	Long:  "Adds an experience entry. Associated projects are given by id and snapshotted as id+name at creation time; they are not re-resolved later.",
	RunE:  runExperienceAdd,
}

var experienceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceUpdate,
}

var experienceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceDelete,
}

var (
	experienceCompany     string
	experienceRole        string
	experienceDuration    string
	experienceDescription string
	experienceProjectIDs  []string
	experienceYes         bool
)

func init() {
	for _, c := range []*cobra.Command{experienceAddCmd, experienceUpdateCmd} {
		c.Flags().StringVar(&experienceCompany, "company", "", "Company name")
		c.Flags().StringVar(&experienceRole, "role", "", "Role title")
		c.Flags().StringVar(&experienceDuration, "duration", "", "Free-text duration, e.g. \"2021 - 2023\"")
		c.Flags().StringVar(&experienceDescription, "description", "", "Description shown when no projects are associated")
		c.Flags().StringArrayVar(&experienceProjectIDs, "project-id", nil, "Associated project id (repeatable)")
	}
	experienceDeleteCmd.Flags().BoolVar(&experienceYes, "yes", false, "Confirm the deletion")

	experienceCmd.AddCommand(experienceListCmd, experienceAddCmd, experienceUpdateCmd, experienceDeleteCmd)
	rootCmd.AddCommand(experienceCmd)
}

// resolveProjectRefs snapshots id+name for each given project id. Every id
// must exist in the projects collection at reference-creation time.
func resolveProjectRefs(ctx context.Context, env *appEnv, ids []string) ([]types.ProjectRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	projects, err := env.client.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects for association: %w", err)
	}
	byID := make(map[string]types.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	refs := make([]types.ProjectRef, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("no project with id %q", id)
		}
		refs = append(refs, types.ProjectRef{ID: p.ID, Name: p.Name})
	}
	return refs, nil
}

func runExperienceList(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Experiences(env.client))
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintExperience(ed.Records())
	return nil
}

func runExperienceAdd(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Experiences(env.client))
	if err != nil {
		return err
	}
	if err := ed.BeginAdd(); err != nil {
		return err
	}

	refs, err := resolveProjectRefs(cmd.Context(), env, experienceProjectIDs)
	if err != nil {
		return err
	}
	exp := types.Experience{
		Company:     experienceCompany,
		Role:        experienceRole,
		Duration:    experienceDuration,
		Description: experienceDescription,
		Projects:    refs,
	}
	return finishSubmit(ed, ed.Submit(cmd.Context(), exp))
}

func runExperienceUpdate(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Experiences(env.client))
	if err != nil {
		return err
	}

	exp, err := ed.BeginEdit(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("company") {
		exp.Company = experienceCompany
	}
	if cmd.Flags().Changed("role") {
		exp.Role = experienceRole
	}
	if cmd.Flags().Changed("duration") {
		exp.Duration = experienceDuration
	}
	if cmd.Flags().Changed("description") {
		exp.Description = experienceDescription
	}
	if cmd.Flags().Changed("project-id") {
		refs, err := resolveProjectRefs(cmd.Context(), env, experienceProjectIDs)
		if err != nil {
			return err
		}
		exp.Projects = refs
	}
	return finishSubmit(ed, ed.Submit(cmd.Context(), exp))
}

func runExperienceDelete(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Experiences(env.client))
	if err != nil {
		return err
	}
	return finishDelete(ed, ed.Delete(cmd.Context(), args[0], experienceYes))
}
