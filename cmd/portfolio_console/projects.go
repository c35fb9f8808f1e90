package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bgv/portfolio-console/internal/editor"
	"github.com/bgv/portfolio-console/internal/observability"
	"github.com/bgv/portfolio-console/internal/types"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage the projects collection",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE:  runProjectsList,
}

var projectsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	RunE:  runProjectsAdd,
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsUpdate,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Long:  "Deletes a project. Experience entries that reference it keep their snapshotted id and name.",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

var (
	projectName        string
	projectDescription string
	projectTechStack   string
	projectGitHubURL   string
	projectLiveDemoURL string
	projectHighlights  []string
	projectsYes        bool
)

func init() {
	for _, c := range []*cobra.Command{projectsAddCmd, projectsUpdateCmd} {
		c.Flags().StringVar(&projectName, "name", "", "Project name")
		c.Flags().StringVar(&projectDescription, "description", "", "Project description")
		c.Flags().StringVar(&projectTechStack, "tech-stack", "", "Comma-delimited technology names")
		c.Flags().StringVar(&projectGitHubURL, "github-url", "", "Repository URL")
		c.Flags().StringVar(&projectLiveDemoURL, "live-demo-url", "", "Live demo URL")
		c.Flags().StringArrayVar(&projectHighlights, "highlight", nil, "Achievement line (repeatable, in order)")
	}
	projectsDeleteCmd.Flags().BoolVar(&projectsYes, "yes", false, "Confirm the deletion")

	projectsCmd.AddCommand(projectsListCmd, projectsAddCmd, projectsUpdateCmd, projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}

func runProjectsList(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Projects(env.client))
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintProjects(ed.Records())
	return nil
}

func runProjectsAdd(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Projects(env.client))
	if err != nil {
		return err
	}
	if err := ed.BeginAdd(); err != nil {
		return err
	}
	project := types.Project{
		Name:        projectName,
		Description: projectDescription,
		TechStack:   projectTechStack,
		GitHubURL:   projectGitHubURL,
		LiveDemoURL: projectLiveDemoURL,
		Highlight:   projectHighlights,
	}
	return finishSubmit(ed, ed.Submit(cmd.Context(), project))
}

func runProjectsUpdate(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Projects(env.client))
	if err != nil {
		return err
	}

	project, err := ed.BeginEdit(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("name") {
		project.Name = projectName
	}
	if cmd.Flags().Changed("description") {
		project.Description = projectDescription
	}
	if cmd.Flags().Changed("tech-stack") {
		project.TechStack = projectTechStack
	}
	if cmd.Flags().Changed("github-url") {
		project.GitHubURL = projectGitHubURL
	}
	if cmd.Flags().Changed("live-demo-url") {
		project.LiveDemoURL = projectLiveDemoURL
	}
	if cmd.Flags().Changed("highlight") {
		project.Highlight = projectHighlights
	}
	return finishSubmit(ed, ed.Submit(cmd.Context(), project))
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Projects(env.client))
	if err != nil {
		return err
	}
	return finishDelete(ed, ed.Delete(cmd.Context(), args[0], projectsYes))
}
