// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bgv/portfolio-console/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs the profile record.
func (p *Printer) PrintProfile(profile types.Profile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Email))
	if profile.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", profile.Phone))
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Location))
	}
	if profile.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:   %s\n", profile.GitHub))
	}
	if profile.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", profile.LinkedIn))
	}
	if profile.Summary != "" {
		sb.WriteString("\n")
		sb.WriteString(profile.Summary)
		sb.WriteString("\n")
	}
	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the skills grouped by category, categories in
// first-appearance order.
func (p *Printer) PrintSkills(skills []types.Skill) {
	if len(skills) == 0 {
		p.printBox("SKILLS", "(none)")
		return
	}

	var order []string
	byCategory := make(map[string][]types.Skill)
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = "Other"
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], s)
	}

	var sb strings.Builder
	for i, category := range order {
		sb.WriteString(category + ":\n")
		for _, s := range byCategory[category] {
			sb.WriteString(fmt.Sprintf("  • %s (%s)  [%s]\n", s.Name, s.Level, s.ID))
		}
		if i < len(order)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjects outputs the projects collection.
func (p *Printer) PrintProjects(projects []types.Project) {
	if len(projects) == 0 {
		p.printBox("PROJECTS", "(none)")
		return
	}

	var sb strings.Builder
	for i, proj := range projects {
		sb.WriteString(fmt.Sprintf("%s  [%s]\n", proj.Name, proj.ID))
		if proj.TechStack != "" {
			sb.WriteString(fmt.Sprintf("  Stack: %s\n", proj.TechStack))
		}
		sb.WriteString(fmt.Sprintf("  %s\n", proj.Description))
		for _, h := range proj.Highlight {
			sb.WriteString(fmt.Sprintf("  • %s\n", h))
		}
		if i < len(projects)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the work-experience collection.
func (p *Printer) PrintExperience(experiences []types.Experience) {
	if len(experiences) == 0 {
		p.printBox("WORK EXPERIENCE", "(none)")
		return
	}

	var sb strings.Builder
	for i, exp := range experiences {
		sb.WriteString(fmt.Sprintf("%s — %s  [%s]\n", exp.Company, exp.Duration, exp.ID))
		sb.WriteString(fmt.Sprintf("  %s\n", exp.Role))
		if len(exp.Projects) > 0 {
			refs := make([]string, 0, len(exp.Projects))
			for _, ref := range exp.Projects {
				refs = append(refs, ref.Name)
			}
			sb.WriteString(fmt.Sprintf("  Projects: %s\n", strings.Join(refs, ", ")))
		} else if exp.Description != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", exp.Description))
		}
		if i < len(experiences)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("WORK EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEducation outputs the education collection.
func (p *Printer) PrintEducation(education []types.Education) {
	if len(education) == 0 {
		p.printBox("EDUCATION", "(none)")
		return
	}

	var sb strings.Builder
	for i, edu := range education {
		sb.WriteString(fmt.Sprintf("%s — %s  [%s]\n", edu.Institute, edu.Duration, edu.ID))
		sb.WriteString(fmt.Sprintf("  %s\n", edu.Degree))
		if edu.Board != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", edu.Board))
		}
		if edu.CGPA != nil {
			sb.WriteString(fmt.Sprintf("  CGPA: %s\n", strconv.FormatFloat(*edu.CGPA, 'g', -1, 64)))
		}
		if edu.Percentage != nil && *edu.Percentage != "" {
			sb.WriteString(fmt.Sprintf("  Percentage: %s%%\n", *edu.Percentage))
		}
		if i < len(education)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("EDUCATION", strings.TrimSuffix(sb.String(), "\n"))
}
