package service

import (
	"context"
	"errors"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo domain.Repository
}

// NewProjectService creates a new project service
func NewProjectService(repo domain.Repository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindAll(ctx)
}

// Get returns a single project or domain.ErrProjectNotFound
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores p unless a project with the same id already exists.
func (s *ProjectService) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	_, err := s.repo.FindByID(ctx, p.ID)
	switch {
	case err == nil:
		return nil, domain.ErrProjectExists
	case !errors.Is(err, domain.ErrProjectNotFound):
		return nil, err
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies a partial update to an existing project and returns the result.
func (s *ProjectService) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
