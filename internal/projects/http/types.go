package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc      *service.ProjectService
	validate *validator.Validate
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

// projectPayload mirrors domain.Project with pointer fields so a key that is
// absent (or null) can be told apart from a zero value.
type projectPayload struct {
	ID               *string `json:"id" validate:"required"`
	Title            *string `json:"title" validate:"required"`
	ShortDescription *string `json:"shortDescription" validate:"required"`
	FullDescription  *string `json:"fullDescription" validate:"required"`
	ImageURL         *string `json:"imageUrl" validate:"required"`
	Category         *string `json:"category" validate:"required"`
	Location         *string `json:"location" validate:"required"`
	Year             *int    `json:"year" validate:"required"`
}

// project assumes the payload passed validation.
func (p projectPayload) project() *domain.Project {
	return &domain.Project{
		ID:               *p.ID,
		Title:            *p.Title,
		ShortDescription: *p.ShortDescription,
		FullDescription:  *p.FullDescription,
		ImageURL:         *p.ImageURL,
		Category:         *p.Category,
		Location:         *p.Location,
		Year:             *p.Year,
	}
}

// patch ignores the id; identifiers are immutable.
func (p projectPayload) patch() domain.ProjectPatch {
	return domain.ProjectPatch{
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		FullDescription:  p.FullDescription,
		ImageURL:         p.ImageURL,
		Category:         p.Category,
		Location:         p.Location,
		Year:             p.Year,
	}
}
