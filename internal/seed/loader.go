package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

// Result counts what a seeding run did.
type Result struct {
	Inserted int
	Skipped  int
	Failed   int
}

func (r Result) log(log zerolog.Logger, target string) {
	log.Info().
		Str("target", target).
		Int("inserted", r.Inserted).
		Int("skipped", r.Skipped).
		Int("failed", r.Failed).
		Msg("seeding finished")
}

// Loader inserts sample projects that are not stored yet.
type Loader struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewLoader(repo domain.Repository, log zerolog.Logger) *Loader {
	return &Loader{repo: repo, log: log.With().Str("component", "seed").Logger()}
}

// Run seeds every item independently; a failure on one item does not stop
// the rest. Running it twice leaves exactly one row per id.
func (l *Loader) Run(ctx context.Context, items []domain.Project) Result {
	var res Result
	for i := range items {
		p := items[i]
		log := l.log.With().Str("project_id", p.ID).Str("title", p.Title).Logger()

		_, err := l.repo.FindByID(ctx, p.ID)
		switch {
		case err == nil:
			log.Info().Msg("project already exists, skipping")
			res.Skipped++
			continue
		case !errors.Is(err, domain.ErrProjectNotFound):
			log.Error().Err(err).Msg("failed to look up project")
			res.Failed++
			continue
		}

		if err := l.repo.Insert(ctx, &p); err != nil {
			if errors.Is(err, domain.ErrProjectExists) {
				log.Info().Msg("project already exists, skipping")
				res.Skipped++
				continue
			}
			log.Error().Err(err).Msg("failed to add project")
			res.Failed++
			continue
		}

		log.Info().Msg("project added")
		res.Inserted++
	}

	res.log(l.log, "database")
	return res
}
