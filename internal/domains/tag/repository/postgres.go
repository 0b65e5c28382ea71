package repository

import (
	"context"
	"errors"
	"fmt"

	"travelblog-backend/internal/domains/tag"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the relational tag store.
func NewPostgresRepository(pool *pgxpool.Pool) tag.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]tag.Tag, error) {
	const query = `SELECT id, name, icon FROM tags ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []tag.Tag{}
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*tag.Tag, error) {
	const query = `SELECT id, name, icon FROM tags WHERE id = $1`

	var t tag.Tag
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Icon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, tag.ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %d: %w", id, err)
	}

	return &t, nil
}

func (r *postgresRepository) Create(ctx context.Context, t *tag.Tag) (*tag.Tag, error) {
	const query = `
		INSERT INTO tags (name, icon)
		VALUES ($1, $2)
		RETURNING id, name, icon
	`

	created := &tag.Tag{}
	err := r.pool.QueryRow(ctx, query, t.Name, t.Icon).
		Scan(&created.ID, &created.Name, &created.Icon)
	if err != nil {
		if isUniqueViolation(err, "tags_name_key") {
			return nil, tag.ErrDuplicateTagName
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int, name, icon string) (*tag.Tag, error) {
	const query = `
		UPDATE tags SET name = $2, icon = $3
		WHERE id = $1
		RETURNING id, name, icon
	`

	updated := &tag.Tag{}
	err := r.pool.QueryRow(ctx, query, id, name, icon).
		Scan(&updated.ID, &updated.Name, &updated.Icon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, tag.ErrTagNotFound
	}
	if err != nil {
		if isUniqueViolation(err, "tags_name_key") {
			return nil, tag.ErrDuplicateTagName
		}
		return nil, fmt.Errorf("failed to update tag %d: %w", id, err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	// ON DELETE SET NULL on blog_posts.tag_id nullifies dependents.
	const query = `DELETE FROM tags WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}

	return nil
}

func (r *postgresRepository) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tags)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check tags: %w", err)
	}
	return !exists, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == constraint
}
