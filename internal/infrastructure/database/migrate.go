package database

import (
	"context"
	"fmt"
)

// Schema statements, applied in order at startup. Everything is idempotent so
// repeated boots are safe. Tag deletion nullifies dependent posts rather than
// cascading; posts must stay readable when their tag goes away.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		icon TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		content TEXT NOT NULL,
		excerpt TEXT NOT NULL,
		image_url TEXT NOT NULL,
		author TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		tag_id INTEGER REFERENCES tags(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_date ON blog_posts (date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_tag_id ON blog_posts (tag_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_slug ON blog_posts (slug)`,
}

// Migrate applies the schema. Single statements only; there are no
// multi-entity invariants that would need a transaction here.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
