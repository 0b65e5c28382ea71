// Package seed loads the initial travel blog corpus. Run is called once at
// startup by the container, gated on the store being empty; it never runs on
// a request path.
package seed

import (
	"context"
	"fmt"
	"time"

	"travelblog-backend/internal/domains/post"
	"travelblog-backend/internal/domains/tag"
	"travelblog-backend/internal/domains/user"
	"travelblog-backend/internal/shared/utils"

	"github.com/rs/zerolog/log"
)

type seedTag struct {
	name string
	icon string
}

type seedPost struct {
	title    string
	content  string
	excerpt  string
	imageURL string
	author   string
	date     string // YYYY-MM-DD
	tagName  string
	featured bool
}

var seedTags = []seedTag{
	{"Mountains", "fa-mountain"},
	{"Nature", "fa-tree"},
	{"Food", "fa-utensils"},
	{"History", "fa-landmark"},
	{"Cities", "fa-city"},
	{"Coastline", "fa-water"},
}

// Run seeds tags and posts when the tag table is empty, and always ensures
// the admin account exists. Safe to call on every boot.
func Run(ctx context.Context, tags tag.Repository, posts post.Repository, users user.Service, adminUsername, adminPassword string) error {
	if err := users.EnsureAdmin(ctx, adminUsername, adminPassword); err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}

	empty, err := tags.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if !empty {
		log.Debug().Msg("Store already seeded, skipping")
		return nil
	}

	tagIDs := make(map[string]int, len(seedTags))
	for _, st := range seedTags {
		created, err := tags.Create(ctx, &tag.Tag{Name: st.name, Icon: st.icon})
		if err != nil {
			return fmt.Errorf("failed to seed tag %q: %w", st.name, err)
		}
		tagIDs[st.name] = created.ID
	}

	for _, sp := range seedPosts {
		date, err := time.Parse("2006-01-02", sp.date)
		if err != nil {
			return fmt.Errorf("bad seed date for %q: %w", sp.title, err)
		}

		tagID := tagIDs[sp.tagName]
		if _, err := posts.Create(ctx, &post.Post{
			Title:    sp.title,
			Slug:     utils.GenerateSlug(sp.title),
			Content:  sp.content,
			Excerpt:  sp.excerpt,
			ImageURL: sp.imageURL,
			Author:   sp.author,
			Date:     date,
			Featured: sp.featured,
			TagID:    &tagID,
		}); err != nil {
			return fmt.Errorf("failed to seed post %q: %w", sp.title, err)
		}
	}

	log.Info().
		Int("tags", len(seedTags)).
		Int("posts", len(seedPosts)).
		Msg("Seeded initial blog data")

	return nil
}
