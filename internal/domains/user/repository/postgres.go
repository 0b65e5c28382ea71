package repository

import (
	"context"
	"errors"
	"fmt"

	"travelblog-backend/internal/domains/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the relational user store.
func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*user.User, error) {
	return r.getBy(ctx, `SELECT id, username, password FROM users WHERE id = $1`, id)
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getBy(ctx, `SELECT id, username, password FROM users WHERE username = $1`, username)
}

func (r *postgresRepository) getBy(ctx context.Context, query string, arg any) (*user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	const query = `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password
	`

	created := &user.User{}
	err := r.pool.QueryRow(ctx, query, u.Username, u.Password).
		Scan(&created.ID, &created.Username, &created.Password)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "users_username_key" {
			return nil, user.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}
