package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bgv/portfolio-console/internal/editor"
	"github.com/bgv/portfolio-console/internal/observability"
	"github.com/bgv/portfolio-console/internal/types"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the skills collection",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills grouped by category",
	RunE:  runSkillsList,
}

var skillsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a skill",
	RunE:  runSkillsAdd,
}

var skillsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsUpdate,
}

var skillsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsDelete,
}

var (
	skillName     string
	skillLevel    string
	skillCategory string
	skillsYes     bool
)

func init() {
	for _, c := range []*cobra.Command{skillsAddCmd, skillsUpdateCmd} {
		c.Flags().StringVar(&skillName, "name", "", "Skill name")
		c.Flags().StringVar(&skillLevel, "level", "", "Proficiency: Beginner, Intermediate, Advanced or Expert")
		c.Flags().StringVar(&skillCategory, "category", "", "Grouping label, e.g. Languages or Frameworks")
	}
	skillsDeleteCmd.Flags().BoolVar(&skillsYes, "yes", false, "Confirm the deletion")

	skillsCmd.AddCommand(skillsListCmd, skillsAddCmd, skillsUpdateCmd, skillsDeleteCmd)
	rootCmd.AddCommand(skillsCmd)
}

func runSkillsList(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Skills(env.client))
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintSkills(ed.Records())
	return nil
}

func runSkillsAdd(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Skills(env.client))
	if err != nil {
		return err
	}
	if err := ed.BeginAdd(); err != nil {
		return err
	}
	skill := types.Skill{
		Name:     skillName,
		Level:    types.SkillLevel(skillLevel),
		Category: skillCategory,
	}
	return finishSubmit(ed, ed.Submit(cmd.Context(), skill))
}

func runSkillsUpdate(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Skills(env.client))
	if err != nil {
		return err
	}

	// The form is pre-populated with the record's current values; only
	// flags given on the command line override them.
	skill, err := ed.BeginEdit(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("name") {
		skill.Name = skillName
	}
	if cmd.Flags().Changed("level") {
		skill.Level = types.SkillLevel(skillLevel)
	}
	if cmd.Flags().Changed("category") {
		skill.Category = skillCategory
	}
	return finishSubmit(ed, ed.Submit(cmd.Context(), skill))
}

func runSkillsDelete(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Skills(env.client))
	if err != nil {
		return err
	}
	return finishDelete(ed, ed.Delete(cmd.Context(), args[0], skillsYes))
}
