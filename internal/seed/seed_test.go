package seed

import (
	"context"
	"testing"

	userservice "travelblog-backend/internal/domains/user/service"
	"travelblog-backend/internal/infrastructure/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	tags := store.TagRepository()
	posts := store.PostRepository()
	users := userservice.NewUserService(store.UserRepository())

	require.NoError(t, Run(ctx, tags, posts, users, "admin", "secret"))

	allTags, err := tags.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allTags, len(seedTags))

	allPosts, err := posts.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allPosts, len(seedPosts))

	// Every seeded post carries a resolvable tag.
	for _, p := range allPosts {
		require.NotNil(t, p.TagID, p.Title)
		assert.NotNil(t, p.Tag, p.Title)
		assert.NotEmpty(t, p.Slug, p.Title)
	}

	featured, err := posts.GetFeatured(ctx)
	require.NoError(t, err)
	assert.Contains(t, featured.Title, "Dracula")

	admin, err := store.UserRepository().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", admin.Password)
}

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	tags := store.TagRepository()
	posts := store.PostRepository()
	users := userservice.NewUserService(store.UserRepository())

	require.NoError(t, Run(ctx, tags, posts, users, "admin", "secret"))
	require.NoError(t, Run(ctx, tags, posts, users, "admin", "secret"))

	allTags, err := tags.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allTags, len(seedTags))

	allPosts, err := posts.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allPosts, len(seedPosts))
}
