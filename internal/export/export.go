// Package export turns the in-memory portfolio collections into
// downloadable artifacts: an HTML resume, a sectioned CSV, a JSON archive,
// and a PDF rendering of the resume. Everything here is a pure function of
// the collections; no network access happens.
package export

import (
	"regexp"
	"time"

	"github.com/bgv/portfolio-console/internal/types"
)

// Data is the full set of collections the engine works from.
type Data struct {
	Profile    types.Profile
	Skills     []types.Skill
	Projects   []types.Project
	Experience []types.Experience
	Education  []types.Education
}

// Engine produces export artifacts. The clock only feeds the archive
// timestamp.
type Engine struct {
	now func() time.Time
}

// NewEngine creates an engine using the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// SetClock replaces the timestamp source. Tests use it for deterministic
// archives.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// baseName derives the filename stem from the profile name: whitespace runs
// collapse to single underscores.
func baseName(profile types.Profile) string {
	name := whitespaceRun.ReplaceAllString(profile.Name, "_")
	if name == "" {
		return "Portfolio"
	}
	return name
}

// ResumeFilename is the suggested filename for the HTML resume,
// e.g. "Jane_Doe_Resume.html".
func ResumeFilename(profile types.Profile) string {
	return baseName(profile) + "_Resume.html"
}

// PDFFilename is the suggested filename for the PDF resume.
func PDFFilename(profile types.Profile) string {
	return baseName(profile) + "_Resume.pdf"
}

// CSVFilename is the suggested filename for the tabular export.
func CSVFilename(profile types.Profile) string {
	return baseName(profile) + "_Portfolio_Data.csv"
}

// ArchiveFilename is the suggested filename for the JSON archive.
func ArchiveFilename(profile types.Profile) string {
	return baseName(profile) + "_Portfolio.json"
}
