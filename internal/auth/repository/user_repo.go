package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/database"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := r.db.Rebind(`SELECT id, username, password FROM users WHERE username = ?`)

	var user domain.User
	if err := r.db.GetContext(ctx, &user, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// Create inserts the user and fills in the generated ID.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	q := r.db.Rebind(`INSERT INTO users (username, password) VALUES (?, ?) RETURNING id`)

	if err := r.db.QueryRowxContext(ctx, q, user.Username, user.PasswordHash).Scan(&user.ID); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("create user %s: %w: %v", user.Username, domain.ErrUsernameTaken, err)
		}
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}
	return nil
}
