package editor

import (
	"context"

	"github.com/bgv/portfolio-console/internal/api"
	"github.com/bgv/portfolio-console/internal/types"
)

// Skills describes the skills collection for an Editor.
func Skills(client *api.Client) Descriptor[types.Skill] {
	return Descriptor[types.Skill]{
		Name:     "skill",
		Fetch:    client.ListSkills,
		Create:   client.CreateSkill,
		Update:   client.UpdateSkill,
		Delete:   client.DeleteSkill,
		Validate: func(s types.Skill) map[string]string { return types.FieldErrors(s) },
	}
}

// Projects describes the projects collection for an Editor.
func Projects(client *api.Client) Descriptor[types.Project] {
	return Descriptor[types.Project]{
		Name:     "project",
		Fetch:    client.ListProjects,
		Create:   client.CreateProject,
		Update:   client.UpdateProject,
		Delete:   client.DeleteProject,
		Validate: func(p types.Project) map[string]string { return types.FieldErrors(p) },
	}
}

// Experiences describes the work-experience collection for an Editor.
func Experiences(client *api.Client) Descriptor[types.Experience] {
	return Descriptor[types.Experience]{
		Name:     "experience",
		Fetch:    client.ListExperience,
		Create:   client.CreateExperience,
		Update:   client.UpdateExperience,
		Delete:   client.DeleteExperience,
		Validate: func(e types.Experience) map[string]string { return types.FieldErrors(e) },
	}
}

// Educations describes the education collection for an Editor.
func Educations(client *api.Client) Descriptor[types.Education] {
	return Descriptor[types.Education]{
		Name:     "education",
		Fetch:    client.ListEducation,
		Create:   client.CreateEducation,
		Update:   client.UpdateEducation,
		Delete:   client.DeleteEducation,
		Validate: func(e types.Education) map[string]string { return types.FieldErrors(e) },
	}
}

// ProfileDescriptor describes the singleton profile. The collection always
// holds exactly one record; create and delete stay nil so those transitions
// are rejected.
func ProfileDescriptor(client *api.Client) Descriptor[types.Profile] {
	return Descriptor[types.Profile]{
		Name: "profile",
		Fetch: func(ctx context.Context) ([]types.Profile, error) {
			p, err := client.GetProfile(ctx)
			if err != nil {
				return nil, err
			}
			return []types.Profile{p}, nil
		},
		Update:   client.UpdateProfile,
		Validate: func(p types.Profile) map[string]string { return types.FieldErrors(p) },
	}
}
