package seed

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

type fileEntry struct {
	ID               string `yaml:"id" validate:"required"`
	Title            string `yaml:"title" validate:"required"`
	ShortDescription string `yaml:"shortDescription" validate:"required"`
	FullDescription  string `yaml:"fullDescription" validate:"required"`
	ImageURL         string `yaml:"imageUrl" validate:"required"`
	Category         string `yaml:"category" validate:"required"`
	Location         string `yaml:"location" validate:"required"`
	Year             int    `yaml:"year" validate:"required"`
}

type seedFile struct {
	Projects []fileEntry `yaml:"projects"`
}

// LoadFile reads projects from a YAML document of the form
//
//	projects:
//	  - id: ...
//	    title: ...
//
// Every entry must carry all eight fields.
func LoadFile(path string) ([]domain.Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	v := validator.New()
	out := make([]domain.Project, 0, len(f.Projects))
	for i, e := range f.Projects {
		if err := v.Struct(e); err != nil {
			return nil, fmt.Errorf("seed file %s: entry %d: %w", path, i, err)
		}
		out = append(out, domain.Project(e))
	}
	return out, nil
}

// Resolve returns the projects from path, or the built-in samples when path
// is empty.
func Resolve(path string) ([]domain.Project, error) {
	if path == "" {
		return DefaultProjects(), nil
	}
	return LoadFile(path)
}
