package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/database"
)

// OpenDB connects to the configured store and creates missing tables.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("db schema: %w", err)
	}

	return db, nil
}
