package api

import (
	"context"
	"net/http"

	"github.com/bgv/portfolio-console/internal/types"
)

// Resource paths on the backend. Reads are public; writes require a bearer
// token.
const (
	pathProfile    = "/profile"
	pathSkills     = "/skills"
	pathProjects   = "/projects"
	pathExperience = "/experience"
	pathEducation  = "/education"
	pathLogin      = "/auth/login"
)

// Login authenticates against the backend and returns the bearer token and
// user record. It does not store them; that is the session store's job.
func (c *Client) Login(ctx context.Context, username, password string) (*types.LoginResult, error) {
	data, message, err := c.do(ctx, http.MethodPost, pathLogin, types.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	result, err := types.DecodeLoginData(data)
	if err != nil {
		return nil, &Error{Message: "failed to decode login response", Cause: err}
	}
	result.Message = message
	return result, nil
}

// GetProfile fetches the singleton profile record.
func (c *Client) GetProfile(ctx context.Context) (types.Profile, error) {
	return getJSON[types.Profile](ctx, c, pathProfile)
}

// UpdateProfile replaces the profile and returns the server's canonical copy.
func (c *Client) UpdateProfile(ctx context.Context, id string, p types.Profile) (types.Profile, error) {
	return update(ctx, c, pathProfile, id, p)
}

// ListSkills fetches all skills in display order.
func (c *Client) ListSkills(ctx context.Context) ([]types.Skill, error) {
	return getJSON[[]types.Skill](ctx, c, pathSkills)
}

// CreateSkill creates a skill and returns it with its server-assigned id.
func (c *Client) CreateSkill(ctx context.Context, s types.Skill) (types.Skill, error) {
	return create(ctx, c, pathSkills, s)
}

// UpdateSkill replaces the skill with the given id.
func (c *Client) UpdateSkill(ctx context.Context, id string, s types.Skill) (types.Skill, error) {
	return update(ctx, c, pathSkills, id, s)
}

// DeleteSkill deletes the skill with the given id.
func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.remove(ctx, pathSkills, id)
}

// ListProjects fetches all projects in display order.
func (c *Client) ListProjects(ctx context.Context) ([]types.Project, error) {
	return getJSON[[]types.Project](ctx, c, pathProjects)
}

// CreateProject creates a project and returns it with its server-assigned id.
func (c *Client) CreateProject(ctx context.Context, p types.Project) (types.Project, error) {
	return create(ctx, c, pathProjects, p)
}

// UpdateProject replaces the project with the given id.
func (c *Client) UpdateProject(ctx context.Context, id string, p types.Project) (types.Project, error) {
	return update(ctx, c, pathProjects, id, p)
}

// DeleteProject deletes the project with the given id. Experience records
// that embedded this project keep their snapshot; no reconciliation happens.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.remove(ctx, pathProjects, id)
}

// ListExperience fetches all work-experience entries in display order.
func (c *Client) ListExperience(ctx context.Context) ([]types.Experience, error) {
	return getJSON[[]types.Experience](ctx, c, pathExperience)
}

// CreateExperience creates an experience entry and returns it with its
// server-assigned id.
func (c *Client) CreateExperience(ctx context.Context, e types.Experience) (types.Experience, error) {
	return create(ctx, c, pathExperience, e)
}

// UpdateExperience replaces the experience entry with the given id.
func (c *Client) UpdateExperience(ctx context.Context, id string, e types.Experience) (types.Experience, error) {
	return update(ctx, c, pathExperience, id, e)
}

// DeleteExperience deletes the experience entry with the given id.
func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	return c.remove(ctx, pathExperience, id)
}

// ListEducation fetches all education entries in display order.
func (c *Client) ListEducation(ctx context.Context) ([]types.Education, error) {
	return getJSON[[]types.Education](ctx, c, pathEducation)
}

// CreateEducation creates an education entry and returns it with its
// server-assigned id.
func (c *Client) CreateEducation(ctx context.Context, e types.Education) (types.Education, error) {
	return create(ctx, c, pathEducation, e)
}

// UpdateEducation replaces the education entry with the given id.
func (c *Client) UpdateEducation(ctx context.Context, id string, e types.Education) (types.Education, error) {
	return update(ctx, c, pathEducation, id, e)
}

// DeleteEducation deletes the education entry with the given id.
func (c *Client) DeleteEducation(ctx context.Context, id string) error {
	return c.remove(ctx, pathEducation, id)
}
