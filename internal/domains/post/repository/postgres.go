package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travelblog-backend/internal/domains/post"
	"travelblog-backend/internal/domains/tag"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the relational post store.
func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

// joinedSelect resolves the tag at read time. LEFT JOIN keeps posts with a
// null or dangling tag_id readable; their tag columns scan as NULL.
const joinedSelect = `
	SELECT p.id, p.title, p.slug, p.content, p.excerpt, p.image_url,
	       p.author, p.date, p.featured, p.tag_id,
	       t.id, t.name, t.icon
	FROM blog_posts p
	LEFT JOIN tags t ON t.id = p.tag_id
`

func scanJoined(row pgx.Row) (*post.PostWithTag, error) {
	var pt post.PostWithTag
	var tagID *int
	var tagName, tagIcon *string

	err := row.Scan(
		&pt.ID, &pt.Title, &pt.Slug, &pt.Content, &pt.Excerpt, &pt.ImageURL,
		&pt.Author, &pt.Date, &pt.Featured, &pt.TagID,
		&tagID, &tagName, &tagIcon,
	)
	if err != nil {
		return nil, err
	}

	if tagID != nil {
		pt.Tag = &tag.Tag{ID: *tagID, Name: *tagName, Icon: *tagIcon}
	}

	return &pt, nil
}

func (r *postgresRepository) queryJoined(ctx context.Context, query string, args ...any) ([]post.PostWithTag, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []post.PostWithTag{}
	for rows.Next() {
		pt, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *pt)
	}

	return posts, rows.Err()
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]post.PostWithTag, error) {
	return r.queryJoined(ctx, joinedSelect+` ORDER BY p.date DESC`)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*post.PostWithTag, error) {
	pt, err := scanJoined(r.pool.QueryRow(ctx, joinedSelect+` WHERE p.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return pt, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*post.PostWithTag, error) {
	pt, err := scanJoined(r.pool.QueryRow(ctx, joinedSelect+` WHERE p.slug = $1 ORDER BY p.id LIMIT 1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by slug %q: %w", slug, err)
	}
	return pt, nil
}

func (r *postgresRepository) GetByTagID(ctx context.Context, tagID int) ([]post.PostWithTag, error) {
	return r.queryJoined(ctx, joinedSelect+` WHERE p.tag_id = $1 ORDER BY p.date DESC`, tagID)
}

func (r *postgresRepository) GetFeatured(ctx context.Context) (*post.PostWithTag, error) {
	pt, err := scanJoined(r.pool.QueryRow(ctx, joinedSelect+` WHERE p.featured ORDER BY p.date DESC LIMIT 1`))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrNoFeaturedPost
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get featured post: %w", err)
	}
	return pt, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	const query = `
		INSERT INTO blog_posts (title, slug, content, excerpt, image_url, author, date, featured, tag_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, title, slug, content, excerpt, image_url, author, date, featured, tag_id
	`

	created := &post.Post{}
	err := r.pool.QueryRow(ctx, query,
		p.Title, p.Slug, p.Content, p.Excerpt, p.ImageURL,
		p.Author, p.Date, p.Featured, p.TagID,
	).Scan(
		&created.ID, &created.Title, &created.Slug, &created.Content,
		&created.Excerpt, &created.ImageURL, &created.Author, &created.Date,
		&created.Featured, &created.TagID,
	)
	if err != nil {
		if isForeignKeyViolation(err, "blog_posts_tag_id_fkey") {
			return nil, post.ErrTagRefNotFound
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int, upd *post.Update) (*post.Post, error) {
	set := []string{}
	args := []any{id}

	addClause := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		addClause("title", *upd.Title)
	}
	if upd.Slug != nil {
		addClause("slug", *upd.Slug)
	}
	if upd.Content != nil {
		addClause("content", *upd.Content)
	}
	if upd.Excerpt != nil {
		addClause("excerpt", *upd.Excerpt)
	}
	if upd.ImageURL != nil {
		addClause("image_url", *upd.ImageURL)
	}
	if upd.Author != nil {
		addClause("author", *upd.Author)
	}
	if upd.Date != nil {
		addClause("date", *upd.Date)
	}
	if upd.Featured != nil {
		addClause("featured", *upd.Featured)
	}
	if upd.TagID != nil {
		addClause("tag_id", *upd.TagID)
	}

	if len(set) == 0 {
		// Nothing to merge; behave like a read so the caller still gets
		// ErrPostNotFound for an absent id.
		pt, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &pt.Post, nil
	}

	query := fmt.Sprintf(`
		UPDATE blog_posts SET %s
		WHERE id = $1
		RETURNING id, title, slug, content, excerpt, image_url, author, date, featured, tag_id
	`, strings.Join(set, ", "))

	updated := &post.Post{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&updated.ID, &updated.Title, &updated.Slug, &updated.Content,
		&updated.Excerpt, &updated.ImageURL, &updated.Author, &updated.Date,
		&updated.Featured, &updated.TagID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		if isForeignKeyViolation(err, "blog_posts_tag_id_fkey") {
			return nil, post.ErrTagRefNotFound
		}
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func isForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == constraint
}
