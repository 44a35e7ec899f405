package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	projectrepo "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/seed"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "load sample projects into the portfolio store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Usage:   "YAML file with a projects list; built-in samples when empty",
				EnvVars: []string{"SEED_FILE"},
			},
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "seed through a running API (e.g. http://localhost:5000) instead of the database",
			},
			&cli.StringFlag{
				Name:    "username",
				Usage:   "account used to log in when --api-url is set",
				EnvVars: []string{"SEED_USERNAME"},
			},
			&cli.StringFlag{
				Name:    "password",
				EnvVars: []string{"SEED_PASSWORD"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run(c *cli.Context) error {
	items, err := seed.Resolve(c.String("file"))
	if err != nil {
		return err
	}

	if apiURL := c.String("api-url"); apiURL != "" {
		return seedAPI(c.Context, c, apiURL, items)
	}
	return seedDatabase(c.Context, items)
}

func seedDatabase(ctx context.Context, items []domain.Project) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := bootstrap.NewLogger(cfg.App)

	db, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	// per-item failures are logged by the loader and do not fail the run
	seed.NewLoader(projectrepo.NewProjectRepository(db), logger).Run(ctx, items)
	return nil
}

func seedAPI(ctx context.Context, c *cli.Context, apiURL string, items []domain.Project) error {
	username, password := c.String("username"), c.String("password")
	if username == "" || password == "" {
		return cli.Exit("--username and --password are required with --api-url", 2)
	}

	client := seed.NewAPIClient(apiURL, log.Logger)
	token, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	client.Push(ctx, token, items)
	return nil
}
