package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bgv/portfolio-console/internal/editor"
	"github.com/bgv/portfolio-console/internal/observability"
	"github.com/bgv/portfolio-console/internal/types"
)

var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Manage the education collection",
}

var educationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all education entries",
	RunE:  runEducationList,
}

var educationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an education entry",
	RunE:  runEducationAdd,
}

var educationUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEducationUpdate,
}

var educationDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEducationDelete,
}

var (
	educationInstitute  string
	educationDegree     string
	educationDuration   string
	educationBoard      string
	educationCGPA       float64
	educationPercentage string
	educationYes        bool
)

func init() {
	for _, c := range []*cobra.Command{educationAddCmd, educationUpdateCmd} {
		c.Flags().StringVar(&educationInstitute, "institute", "", "Institute name")
		c.Flags().StringVar(&educationDegree, "degree", "", "Degree or course")
		c.Flags().StringVar(&educationDuration, "duration", "", "Free-text duration, e.g. \"2017 - 2021\"")
		c.Flags().StringVar(&educationBoard, "board", "", "Board or university")
		c.Flags().Float64Var(&educationCGPA, "cgpa", 0, "CGPA (optional)")
		c.Flags().StringVar(&educationPercentage, "percentage", "", "Percentage (optional)")
	}
	educationDeleteCmd.Flags().BoolVar(&educationYes, "yes", false, "Confirm the deletion")

	educationCmd.AddCommand(educationListCmd, educationAddCmd, educationUpdateCmd, educationDeleteCmd)
	rootCmd.AddCommand(educationCmd)
}

func runEducationList(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Educations(env.client))
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintEducation(ed.Records())
	return nil
}

func runEducationAdd(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Educations(env.client))
	if err != nil {
		return err
	}
	if err := ed.BeginAdd(); err != nil {
		return err
	}

	edu := types.Education{
		Institute: educationInstitute,
		Degree:    educationDegree,
		Duration:  educationDuration,
		Board:     educationBoard,
	}
	if cmd.Flags().Changed("cgpa") {
		cgpa := educationCGPA
		edu.CGPA = &cgpa
	}
	if cmd.Flags().Changed("percentage") {
		percentage := educationPercentage
		edu.Percentage = &percentage
	}
	return finishSubmit(ed, ed.Submit(cmd.Context(), edu))
}

func runEducationUpdate(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Educations(env.client))
	if err != nil {
		return err
	}

	edu, err := ed.BeginEdit(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("institute") {
		edu.Institute = educationInstitute
	}
	if cmd.Flags().Changed("degree") {
		edu.Degree = educationDegree
	}
	if cmd.Flags().Changed("duration") {
		edu.Duration = educationDuration
	}
	if cmd.Flags().Changed("board") {
		edu.Board = educationBoard
	}
	if cmd.Flags().Changed("cgpa") {
		cgpa := educationCGPA
		edu.CGPA = &cgpa
	}
	if cmd.Flags().Changed("percentage") {
		percentage := educationPercentage
		edu.Percentage = &percentage
	}
	return finishSubmit(ed, ed.Submit(cmd.Context(), edu))
}

func runEducationDelete(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	if err := requireAuth(env); err != nil {
		return err
	}
	ed, err := loadEditor(cmd.Context(), env, editor.Educations(env.client))
	if err != nil {
		return err
	}
	return finishDelete(ed, ed.Delete(cmd.Context(), args[0], educationYes))
}
