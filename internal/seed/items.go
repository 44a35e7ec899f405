package seed

import "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"

const (
	sampleShort = "Lorem ipsum dolor sit, amet consectetur adipisicing elit."
	sampleFull  = "Lorem ipsum dolor sit, amet consectetur adipisicing elit. Quibusdam, accusamus! " +
		"Earum ullam harum facere voluptas. Delectus ullam, nulla deleniti amet, porro deserunt " +
		"expedita aperiam cupiditate ducimus distinctio vel dolorum magni."
)

// DefaultProjects returns the built-in sample portfolio.
func DefaultProjects() []domain.Project {
	return []domain.Project{
		{
			ID:               "res_depto_providencia",
			Title:            "Departamento Luminoso en Providencia",
			ShortDescription: sampleShort,
			FullDescription:  sampleFull,
			ImageURL:         "https://i.ytimg.com/vi/z-ARZWQ2ccw/maxresdefault.jpg",
			Category:         "Residencial",
			Location:         "Providencia, Santiago",
			Year:             2023,
		},
		{
			ID:               "com_oficina_moderna",
			Title:            "Oficina Colaborativa - Centro",
			ShortDescription: sampleShort,
			FullDescription:  sampleFull,
			ImageURL:         "https://images.unsplash.com/photo-1517048676732-d65bc937f952?q=80&w=1740&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Category:         "Comercial",
			Location:         "Santiago Centro, Santiago",
			Year:             2022,
		},
		{
			ID:               "rem_bano_minimalista",
			Title:            "Remodelación Baño Minimalista",
			ShortDescription: sampleShort,
			FullDescription:  sampleFull,
			ImageURL:         "https://img.freepik.com/fotos-premium/bano-minimalista-moderno-impresionante-ducha-blanca-lujo-resolucion-4k-como-pieza-central_1189966-2709.jpg?w=1380",
			Category:         "Remodelación",
			Location:         "Vitacura, Santiago",
			Year:             2024,
		},
	}
}
