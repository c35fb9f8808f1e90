package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/bgv/portfolio-console/internal/types"
)

// RenderError represents a failure building the resume document.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// resumeData is the structure handed to the resume template. All text
// fields are user-controlled and escaped by html/template on output.
type resumeData struct {
	Profile     types.Profile
	ContactLine string
	SkillGroups []skillGroup
	Experiences []experienceSection
	Education   []types.Education
}

// skillGroup is one category with its comma-joined skill names, in the
// order categories first appear in the collection.
type skillGroup struct {
	Category string
	Names    string
}

// experienceSection is one work-experience entry with its project
// references resolved against the projects collection.
type experienceSection struct {
	types.Experience
	ResolvedProjects []projectSection
}

// projectSection is one associated project with its bullet lines: the
// project's highlights, or its description when it has none. An orphaned
// reference (project deleted since association) keeps the snapshotted name
// and renders without bullets.
type projectSection struct {
	Name    string
	Bullets []string
}

var resumeTmpl = template.Must(template.New("resume").Parse(resumeTemplate))

// Resume builds the self-contained printable HTML document.
func (e *Engine) Resume(d Data) (string, error) {
	data := resumeData{
		Profile:     d.Profile,
		ContactLine: contactLine(d.Profile),
		SkillGroups: groupSkills(d.Skills),
		Experiences: resolveExperience(d.Experience, d.Projects),
		Education:   d.Education,
	}

	var out strings.Builder
	if err := resumeTmpl.Execute(&out, data); err != nil {
		return "", &RenderError{Message: "failed to execute resume template", Cause: err}
	}
	return out.String(), nil
}

// contactLine joins the present contact fields with " | ".
func contactLine(p types.Profile) string {
	parts := make([]string, 0, 3)
	for _, v := range []string{p.Location, p.Email, p.Phone} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

// groupSkills groups skill names by category, preserving the order in which
// categories first appear. Grouping is a derived view; the collection
// itself stays flat.
func groupSkills(skills []types.Skill) []skillGroup {
	var order []string
	byCategory := make(map[string][]string)
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = "Other"
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], s.Name)
	}

	groups := make([]skillGroup, 0, len(order))
	for _, category := range order {
		groups = append(groups, skillGroup{
			Category: category,
			Names:    strings.Join(byCategory[category], ", "),
		})
	}
	return groups
}

// resolveExperience materializes each experience's project snapshot against
// the current projects collection to pick up highlights and descriptions.
func resolveExperience(experiences []types.Experience, projects []types.Project) []experienceSection {
	byID := make(map[string]types.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	sections := make([]experienceSection, 0, len(experiences))
	for _, exp := range experiences {
		section := experienceSection{Experience: exp}
		for _, ref := range exp.Projects {
			ps := projectSection{Name: ref.Name}
			if p, ok := byID[ref.ID]; ok {
				if len(p.Highlight) > 0 {
					ps.Bullets = p.Highlight
				} else if p.Description != "" {
					ps.Bullets = []string{p.Description}
				}
			}
			section.ResolvedProjects = append(section.ResolvedProjects, ps)
		}
		sections = append(sections, section)
	}
	return sections
}

// resumeTemplate is the print-oriented document. Layout follows a classic
// single-column serif resume.
const resumeTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Profile.Name}} - Resume</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: 'Times New Roman', Times, serif;
      max-width: 850px;
      margin: 0 auto;
      padding: 40px 60px;
      line-height: 1.6;
      color: #000;
      background: #fff;
    }
    .header {
      text-align: center;
      margin-bottom: 25px;
      border-bottom: 1px solid #000;
      padding-bottom: 15px;
    }
    h1 { font-size: 28px; font-weight: bold; margin-bottom: 8px; letter-spacing: 0.5px; }
    .contact-info { font-size: 12px; color: #333; }
    h2 {
      font-size: 16px;
      font-weight: bold;
      margin-top: 25px;
      margin-bottom: 12px;
      text-transform: uppercase;
      letter-spacing: 0.5px;
    }
    .section { margin-bottom: 20px; }
    .section p { font-size: 12px; text-align: justify; margin-bottom: 10px; }
    .skills-list { font-size: 12px; margin-left: 20px; }
    .skills-list li { margin-bottom: 6px; line-height: 1.5; }
    .skill-category { font-weight: bold; display: inline; }
    .experience-item { margin-bottom: 18px; }
    .experience-header {
      display: flex;
      justify-content: space-between;
      align-items: baseline;
      margin-bottom: 3px;
    }
    .company-name { font-weight: bold; font-size: 13px; }
    .duration { font-size: 12px; font-style: italic; }
    .role { font-size: 12px; font-style: italic; margin-bottom: 6px; }
    .project-name { font-weight: bold; font-size: 12px; margin-top: 10px; margin-bottom: 4px; }
    .experience-item ul { margin-left: 25px; font-size: 12px; }
    .experience-item ul li { margin-bottom: 4px; }
    .education-item { margin-bottom: 12px; }
    .education-header { display: flex; justify-content: space-between; align-items: baseline; }
    .institute-name { font-weight: bold; font-size: 13px; }
    .degree { font-size: 12px; margin-bottom: 2px; }
    .board-info { font-size: 12px; font-style: italic; color: #333; }
    @media print {
      body { margin: 0; padding: 20px 40px; }
      @page { margin: 0.5in; }
    }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Profile.Name}}</h1>
    <div class="contact-info">{{.ContactLine}}</div>
  </div>
{{- if .Profile.Summary}}

  <div class="section">
    <h2>Summary</h2>
    <p>{{.Profile.Summary}}</p>
  </div>
{{- end}}
{{- if .SkillGroups}}

  <div class="section">
    <h2>Skills</h2>
    <ul class="skills-list">
{{- range .SkillGroups}}
      <li><span class="skill-category">{{.Category}}:</span> {{.Names}}</li>
{{- end}}
    </ul>
  </div>
{{- end}}
{{- if .Experiences}}

  <div class="section">
    <h2>Work Experience</h2>
{{- range .Experiences}}
    <div class="experience-item">
      <div class="experience-header">
        <span class="company-name">{{.Company}}</span>
        <span class="duration">{{.Duration}}</span>
      </div>
      <div class="role">{{.Role}}</div>
{{- if .ResolvedProjects}}
{{- range .ResolvedProjects}}
      <div class="project-name">{{.Name}}</div>
{{- if .Bullets}}
      <ul>
{{- range .Bullets}}
        <li>{{.}}</li>
{{- end}}
      </ul>
{{- end}}
{{- end}}
{{- else if .Description}}
      <p>{{.Description}}</p>
{{- end}}
    </div>
{{- end}}
  </div>
{{- end}}
{{- if .Education}}

  <div class="section">
    <h2>Education</h2>
{{- range .Education}}
    <div class="education-item">
      <div class="education-header">
        <span class="institute-name">{{.Institute}}</span>
        <span class="duration">{{.Duration}}</span>
      </div>
{{- if .Degree}}
      <div class="degree">{{.Degree}}</div>
{{- end}}
{{- if .Board}}
      <div class="board-info">{{.Board}}</div>
{{- end}}
{{- if .CGPA}}
      <div class="board-info">CGPA: {{.CGPA}}</div>
{{- end}}
{{- if .Percentage}}
      <div class="board-info">Percentage: {{.Percentage}}%</div>
{{- end}}
    </div>
{{- end}}
  </div>
{{- end}}
</body>
</html>
`
