package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgv/portfolio-console/internal/types"
)

func TestCSV_StartsWithProfileSection(t *testing.T) {
	out := NewEngine().CSV(fullData())
	assert.True(t, strings.HasPrefix(out, "PROFILE INFORMATION\nField,Value\n"))
}

func TestCSV_ProfileRows(t *testing.T) {
	out := NewEngine().CSV(fullData())

	assert.Contains(t, out, `Name,"Jane Doe"`)
	assert.Contains(t, out, `Title,"Software Engineer"`)
	assert.Contains(t, out, `Email,"jane@example.com"`)
	assert.Contains(t, out, `Location,"Berlin"`)
	assert.Contains(t, out, `Phone,"555-0100"`)
	// Absent optionals become N/A.
	assert.Contains(t, out, `LinkedIn,"N/A"`)
	assert.Contains(t, out, `GitHub,"N/A"`)
}

func TestCSV_SectionHeaders(t *testing.T) {
	out := NewEngine().CSV(fullData())

	assert.Contains(t, out, "SKILLS\nCategory,Skill Name,Level\n")
	assert.Contains(t, out, "PROJECTS\nProject Name,Description,Tech Stack,GitHub URL,Live Demo URL\n")
	assert.Contains(t, out, "WORK EXPERIENCE\nCompany,Role,Duration,Description\n")
	assert.Contains(t, out, "EDUCATION\nInstitute,Degree,Board,Duration,CGPA,Percentage\n")
}

func TestCSV_BlankLineBetweenSections(t *testing.T) {
	out := NewEngine().CSV(fullData())

	assert.Contains(t, out, "\n\nSKILLS\n")
	assert.Contains(t, out, "\n\nPROJECTS\n")
	assert.Contains(t, out, "\n\nWORK EXPERIENCE\n")
	assert.Contains(t, out, "\n\nEDUCATION\n")
}

func TestCSV_DataFieldsQuoted(t *testing.T) {
	out := NewEngine().CSV(fullData())

	assert.Contains(t, out, `"Languages","Go","Advanced"`)
	assert.Contains(t, out, `"Acme","Backend Engineer","2021 - 2023","N/A"`)
	assert.Contains(t, out, `"State University","B.Tech","Technical Board","2017 - 2021","8.5","N/A"`)
	assert.Contains(t, out, `"Central School","High School","N/A","2015 - 2017","N/A","92"`)
}

func TestCSV_EmbeddedQuotesDoubled(t *testing.T) {
	d := fullData()
	d.Projects = []types.Project{
		{ID: "p1", Name: `The "Big" One`, Description: "contains, a comma"},
	}
	out := NewEngine().CSV(d)

	assert.Contains(t, out, `"The ""Big"" One","contains, a comma","N/A","N/A","N/A"`)
}

func TestCSV_EmptySectionsOmitted(t *testing.T) {
	d := Data{Profile: types.Profile{Name: "Jane Doe", Title: "Engineer", Email: "jane@example.com"}}
	out := NewEngine().CSV(d)

	assert.Contains(t, out, "PROFILE INFORMATION")
	assert.NotContains(t, out, "SKILLS")
	assert.NotContains(t, out, "PROJECTS")
	assert.NotContains(t, out, "WORK EXPERIENCE")
	assert.NotContains(t, out, "EDUCATION")
}

func TestCSV_UncategorizedSkillFallsBackToOther(t *testing.T) {
	d := fullData()
	d.Skills = []types.Skill{{ID: "s1", Name: "Juggling", Level: types.LevelBeginner}}
	out := NewEngine().CSV(d)

	assert.Contains(t, out, `"Other","Juggling","Beginner"`)
}

func TestCSV_OneRowPerRecord(t *testing.T) {
	out := NewEngine().CSV(fullData())

	lines := strings.Split(out, "\n")
	var skillRows int
	inSkills := false
	for _, line := range lines {
		switch {
		case line == "SKILLS":
			inSkills = true
		case inSkills && line == "":
			inSkills = false
		case inSkills && strings.HasPrefix(line, `"`):
			skillRows++
		}
	}
	require.Equal(t, 3, skillRows)
}
