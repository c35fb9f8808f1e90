package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/bgv/portfolio-console/internal/types"
)

// Archive is the structured dump of the whole portfolio plus the moment it
// was generated. Field names match the wire format of the collections so
// parsing an archive back reproduces them exactly.
type Archive struct {
	Profile     types.Profile      `json:"profile"`
	Experiences []types.Experience `json:"experiences"`
	Education   []types.Education  `json:"education"`
	Skills      []types.Skill      `json:"skills"`
	Projects    []types.Project    `json:"projects"`
	ExportDate  time.Time          `json:"exportDate"`
}

// ArchiveError represents a failure encoding or decoding an archive.
type ArchiveError struct {
	Message string
	Fields  []string
	Cause   error
}

func (e *ArchiveError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("archive error: %s: %v", e.Message, e.Fields)
	}
	if e.Cause != nil {
		return fmt.Sprintf("archive error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("archive error: %s", e.Message)
}

func (e *ArchiveError) Unwrap() error {
	return e.Cause
}

// Archive serializes the collections with a generation timestamp, indented
// for human inspection.
func (e *Engine) Archive(d Data) ([]byte, error) {
	archive := Archive{
		Profile:     d.Profile,
		Experiences: d.Experience,
		Education:   d.Education,
		Skills:      d.Skills,
		Projects:    d.Projects,
		ExportDate:  e.now().UTC(),
	}
	out, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return nil, &ArchiveError{Message: "failed to encode archive", Cause: err}
	}
	return out, nil
}

// ParseArchive validates raw bytes against the archive schema and decodes
// them. Round-tripping an archive through ParseArchive and Archive is
// idempotent up to the timestamp.
func ParseArchive(raw []byte) (*Archive, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(archiveSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, &ArchiveError{Message: "failed to run schema validation", Cause: err}
	}
	if !result.Valid() {
		fields := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			fields = append(fields, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &ArchiveError{Message: "archive does not match schema", Fields: fields}
	}

	var archive Archive
	if err := json.Unmarshal(raw, &archive); err != nil {
		return nil, &ArchiveError{Message: "failed to decode archive", Cause: err}
	}
	return &archive, nil
}

// archiveSchema is the JSON Schema the structured dump must satisfy.
const archiveSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["profile", "experiences", "education", "skills", "projects", "exportDate"],
  "properties": {
    "profile": {
      "type": "object",
      "required": ["name", "title", "email"],
      "properties": {
        "id": {"type": "string"},
        "name": {"type": "string"},
        "title": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "summary": {"type": "string"},
        "github": {"type": "string"},
        "linkedin": {"type": "string"}
      }
    },
    "experiences": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["company", "role", "duration"],
        "properties": {
          "id": {"type": "string"},
          "company": {"type": "string"},
          "role": {"type": "string"},
          "duration": {"type": "string"},
          "description": {"type": "string"},
          "projects": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "required": ["id", "name"],
              "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "education": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["institute", "degree", "duration"],
        "properties": {
          "id": {"type": "string"},
          "institute": {"type": "string"},
          "degree": {"type": "string"},
          "duration": {"type": "string"},
          "board": {"type": "string"},
          "cgpa": {"type": "number"},
          "percentage": {"type": "string"}
        }
      }
    },
    "skills": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["name", "level", "category"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "level": {"type": "string", "enum": ["Beginner", "Intermediate", "Advanced", "Expert"]},
          "category": {"type": "string"}
        }
      }
    },
    "projects": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["name", "description"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "description": {"type": "string"},
          "techStack": {"type": "string"},
          "githubUrl": {"type": "string"},
          "liveDemoUrl": {"type": "string"},
          "highlight": {"type": ["array", "null"], "items": {"type": "string"}}
        }
      }
    },
    "exportDate": {"type": "string"}
  }
}`
