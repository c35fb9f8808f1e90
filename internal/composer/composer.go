// Package composer assembles the public read-only view of the portfolio.
// All five collections are fetched in parallel and the view renders only
// when every one of them succeeds.
package composer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bgv/portfolio-console/internal/types"
)

// Reader is the read-only surface of the portfolio backend. *api.Client
// satisfies it.
type Reader interface {
	GetProfile(ctx context.Context) (types.Profile, error)
	ListSkills(ctx context.Context) ([]types.Skill, error)
	ListProjects(ctx context.Context) ([]types.Project, error)
	ListExperience(ctx context.Context) ([]types.Experience, error)
	ListEducation(ctx context.Context) ([]types.Education, error)
}

// View holds all five collections for the public page.
type View struct {
	Profile    types.Profile
	Skills     []types.Skill
	Projects   []types.Project
	Experience []types.Experience
	Education  []types.Education
}

// Load fetches all five collections concurrently. If any read fails the
// whole load fails and no partial view is returned; recovery is an explicit
// retry by the caller.
func Load(ctx context.Context, r Reader) (*View, error) {
	var view View
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := r.GetProfile(ctx)
		if err != nil {
			return err
		}
		view.Profile = p
		return nil
	})
	g.Go(func() error {
		s, err := r.ListSkills(ctx)
		if err != nil {
			return err
		}
		view.Skills = s
		return nil
	})
	g.Go(func() error {
		p, err := r.ListProjects(ctx)
		if err != nil {
			return err
		}
		view.Projects = p
		return nil
	})
	g.Go(func() error {
		e, err := r.ListExperience(ctx)
		if err != nil {
			return err
		}
		view.Experience = e
		return nil
	})
	g.Go(func() error {
		e, err := r.ListEducation(ctx)
		if err != nil {
			return err
		}
		view.Education = e
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &view, nil
}
