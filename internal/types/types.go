// Package types provides type definitions for the portfolio resources and
// authentication data exchanged with the portfolio backend.
package types

// SkillLevel is the proficiency level of a skill.
type SkillLevel string

// Skill proficiency levels accepted by the backend.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Profile is the singleton profile record. It is mutated only via update;
// the client never creates or deletes it.
type Profile struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Skill is one entry in the skills collection. Category is a free-form
// grouping label; grouping by category is a derived view, not stored
// structure.
type Skill struct {
	ID       string     `json:"id,omitempty"`
	Name     string     `json:"name" validate:"required"`
	Level    SkillLevel `json:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	Category string     `json:"category" validate:"required"`
}

// Project is one entry in the projects collection.
type Project struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	TechStack   string   `json:"techStack,omitempty"`
	GitHubURL   string   `json:"githubUrl,omitempty"`
	LiveDemoURL string   `json:"liveDemoUrl,omitempty"`
	Highlight   []string `json:"highlight,omitempty"`
}

// ProjectRef is an embedded snapshot of a project's id and name taken at the
// time it was associated with an experience. It is not re-resolved against
// the projects collection afterwards, so it may outlive the project itself.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Experience is one entry in the work-experience collection.
type Experience struct {
	ID          string       `json:"id,omitempty"`
	Company     string       `json:"company" validate:"required"`
	Role        string       `json:"role" validate:"required"`
	Duration    string       `json:"duration" validate:"required"`
	Description string       `json:"description,omitempty"`
	Projects    []ProjectRef `json:"projects,omitempty"`
}

// Education is one entry in the education collection. CGPA and Percentage
// are both optional; either may be present.
type Education struct {
	ID         string   `json:"id,omitempty"`
	Institute  string   `json:"institute" validate:"required"`
	Degree     string   `json:"degree" validate:"required"`
	Duration   string   `json:"duration" validate:"required"`
	Board      string   `json:"board,omitempty"`
	CGPA       *float64 `json:"cgpa,omitempty"`
	Percentage *string  `json:"percentage,omitempty"`
}

// RecordID implements editor.Record.
func (p Profile) RecordID() string { return p.ID }

// RecordID implements editor.Record.
func (s Skill) RecordID() string { return s.ID }

// RecordID implements editor.Record.
func (p Project) RecordID() string { return p.ID }

// RecordID implements editor.Record.
func (e Experience) RecordID() string { return e.ID }

// RecordID implements editor.Record.
func (e Education) RecordID() string { return e.ID }
