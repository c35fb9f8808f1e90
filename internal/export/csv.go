package export

import (
	"strconv"
	"strings"
)

// The CSV export stacks five labelled sections in one artifact, each with
// its own header row. Every data field is quoted with embedded quotes
// doubled; encoding/csv cannot produce the bare section-label lines or
// force quoting, so the writer is hand-rolled.

// quote wraps a field in double quotes, doubling any embedded quotes.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// orNA substitutes "N/A" for absent optional values.
func orNA(field string) string {
	if field == "" {
		return "N/A"
	}
	return field
}

// row writes one data row of quoted fields.
func row(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(f))
	}
	b.WriteByte('\n')
}

// CSV builds the tabular export. Sections with no records are omitted; the
// profile section is always present.
func (e *Engine) CSV(d Data) string {
	var b strings.Builder

	b.WriteString("PROFILE INFORMATION\n")
	b.WriteString("Field,Value\n")
	profileRows := []struct{ field, value string }{
		{"Name", d.Profile.Name},
		{"Title", d.Profile.Title},
		{"Email", d.Profile.Email},
		{"Location", d.Profile.Location},
		{"Phone", orNA(d.Profile.Phone)},
		{"LinkedIn", orNA(d.Profile.LinkedIn)},
		{"GitHub", orNA(d.Profile.GitHub)},
		{"Summary", d.Profile.Summary},
	}
	for _, pr := range profileRows {
		b.WriteString(pr.field)
		b.WriteByte(',')
		b.WriteString(quote(pr.value))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if len(d.Skills) > 0 {
		b.WriteString("SKILLS\n")
		b.WriteString("Category,Skill Name,Level\n")
		for _, s := range d.Skills {
			category := s.Category
			if category == "" {
				category = "Other"
			}
			row(&b, category, s.Name, orNA(string(s.Level)))
		}
		b.WriteByte('\n')
	}

	if len(d.Projects) > 0 {
		b.WriteString("PROJECTS\n")
		b.WriteString("Project Name,Description,Tech Stack,GitHub URL,Live Demo URL\n")
		for _, p := range d.Projects {
			row(&b, p.Name, p.Description, orNA(p.TechStack), orNA(p.GitHubURL), orNA(p.LiveDemoURL))
		}
		b.WriteByte('\n')
	}

	if len(d.Experience) > 0 {
		b.WriteString("WORK EXPERIENCE\n")
		b.WriteString("Company,Role,Duration,Description\n")
		for _, exp := range d.Experience {
			row(&b, exp.Company, exp.Role, exp.Duration, orNA(exp.Description))
		}
		b.WriteByte('\n')
	}

	if len(d.Education) > 0 {
		b.WriteString("EDUCATION\n")
		b.WriteString("Institute,Degree,Board,Duration,CGPA,Percentage\n")
		for _, edu := range d.Education {
			cgpa := "N/A"
			if edu.CGPA != nil {
				cgpa = strconv.FormatFloat(*edu.CGPA, 'g', -1, 64)
			}
			percentage := "N/A"
			if edu.Percentage != nil && *edu.Percentage != "" {
				percentage = *edu.Percentage
			}
			row(&b, edu.Institute, orNA(edu.Degree), orNA(edu.Board), edu.Duration, cgpa, percentage)
		}
	}

	return b.String()
}
