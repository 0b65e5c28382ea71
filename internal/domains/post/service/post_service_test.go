package service

import (
	"context"
	"testing"
	"time"

	"travelblog-backend/internal/domains/post"
	"travelblog-backend/internal/domains/tag"
	tagservice "travelblog-backend/internal/domains/tag/service"
	"travelblog-backend/internal/infrastructure/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a service over the memory backend with a small corpus:
// three posts across two tags plus one untagged post.
func fixture(t *testing.T) (post.Service, map[string]int) {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()

	tagSvc := tagservice.NewTagService(store.TagRepository())
	svc := NewPostService(store.PostRepository())

	tagIDs := map[string]int{}
	for _, req := range []tag.TagReq{
		{Name: "Mountains", Icon: "fa-mountain"},
		{Name: "History", Icon: "fa-landmark"},
	} {
		created, err := tagSvc.Create(ctx, &req)
		require.NoError(t, err)
		tagIDs[created.Name] = created.ID
	}

	posts := []post.CreatePostReq{
		{
			Title:    "Dracula's Castle: Beyond the Myths",
			Content:  "Bran Castle looms over the pass.",
			Excerpt:  "The castle behind the legend.",
			ImageURL: "https://example.com/bran.jpg",
			Author:   "Elena",
			Date:     mustDate("2023-11-10"),
			Featured: true,
			TagID:    intPtr(tagIDs["History"]),
		},
		{
			Title:    "The Spectacular Transfagarasan Highway",
			Content:  "Hairpin after hairpin through the Fagaras range.",
			Excerpt:  "Romania's most dramatic road.",
			ImageURL: "https://example.com/road.jpg",
			Author:   "Elena",
			Date:     mustDate("2023-10-12"),
			TagID:    intPtr(tagIDs["Mountains"]),
		},
		{
			Title:    "Sighisoara: A Walk Through Medieval Streets",
			Content:  "The citadel's clock tower and cobbled lanes.",
			Excerpt:  "A living medieval town.",
			ImageURL: "https://example.com/citadel.jpg",
			Author:   "Elena",
			Date:     mustDate("2023-09-28"),
			TagID:    intPtr(tagIDs["History"]),
		},
		{
			Title:    "Notes From the Road",
			Content:  "Loose ends and packing lists.",
			Excerpt:  "Miscellany.",
			ImageURL: "https://example.com/notes.jpg",
			Author:   "Elena",
			Date:     mustDate("2023-08-01"),
		},
	}
	for i := range posts {
		_, err := svc.Create(ctx, &posts[i])
		require.NoError(t, err)
	}

	return svc, tagIDs
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func intPtr(v int) *int { return &v }

func titles(posts []post.PostWithTag) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}

func TestSearch_EmptyQueryReturnsNothing(t *testing.T) {
	svc, _ := fixture(t)

	for _, q := range []string{"", "   ", "\t"} {
		results, err := svc.Search(context.Background(), q, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.NotNil(t, results)
	}
}

func TestSearch_SubstringMatches(t *testing.T) {
	svc, _ := fixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title substring, case-insensitive", "DRACULA", []string{"Dracula's Castle: Beyond the Myths"}},
		{"content substring", "hairpin", []string{"The Spectacular Transfagarasan Highway"}},
		{"excerpt substring", "medieval town", []string{"Sighisoara: A Walk Through Medieval Streets"}},
		{"no match", "xyz123", []string{}},
		{"title and content both hit, one result", "castle", []string{"Dracula's Castle: Beyond the Myths"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.Search(ctx, tt.query, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(results))
		})
	}
}

func TestSearch_SubsequenceMatchesTitle(t *testing.T) {
	svc, _ := fixture(t)
	ctx := context.Background()

	// "drcl" is not a substring anywhere but is a subsequence of "dracula's
	// castle...".
	results, err := svc.Search(ctx, "drcl", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dracula's Castle: Beyond the Myths"}, titles(results))

	// Subsequence applies to the title only, never content or excerpt.
	results, err = svc.Search(ctx, "hrpn", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_CombinedWithTagFilter(t *testing.T) {
	svc, tagIDs := fixture(t)
	ctx := context.Background()

	// "the" hits every titled post; the tag set narrows it to History.
	results, err := svc.Search(ctx, "the", []int{tagIDs["History"]})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Dracula's Castle: Beyond the Myths",
		"Sighisoara: A Walk Through Medieval Streets",
	}, titles(results))

	// Disjoint intersection is empty, not an error.
	results, err = svc.Search(ctx, "dracula", []int{tagIDs["Mountains"]})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestList_TagSetFilter(t *testing.T) {
	svc, tagIDs := fixture(t)
	ctx := context.Background()

	// Empty set means no filter.
	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// Inclusive OR across the set; untagged posts never match a filter.
	results, err := svc.List(ctx, []int{tagIDs["Mountains"], tagIDs["History"]})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Dracula's Castle: Beyond the Myths",
		"The Spectacular Transfagarasan Highway",
		"Sighisoara: A Walk Through Medieval Streets",
	}, titles(results))
}

func TestGetFeatured(t *testing.T) {
	svc, _ := fixture(t)

	featured, err := svc.GetFeatured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dracula's Castle: Beyond the Myths", featured.Title)
}

func TestCreate_DerivesSlugFromTitle(t *testing.T) {
	svc, _ := fixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &post.CreatePostReq{
		Title:    "Mămăligă and Țuică: A Tasting Tour",
		Content:  "c",
		Excerpt:  "e",
		ImageURL: "https://example.com/food.jpg",
		Author:   "Elena",
		Date:     mustDate("2023-08-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "mamaliga-and-tuica-a-tasting-tour", created.Slug)
}

func TestCreate_ExplicitSlugWins(t *testing.T) {
	svc, _ := fixture(t)

	created, err := svc.Create(context.Background(), &post.CreatePostReq{
		Title:    "Some Title",
		Slug:     "custom-slug",
		Content:  "c",
		Excerpt:  "e",
		ImageURL: "https://example.com/x.jpg",
		Author:   "Elena",
		Date:     mustDate("2023-08-16"),
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", created.Slug)
}

func TestUpdate_TitleChangeKeepsSlug(t *testing.T) {
	svc, _ := fixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &post.CreatePostReq{
		Title:    "Original Title",
		Content:  "c",
		Excerpt:  "e",
		ImageURL: "https://example.com/x.jpg",
		Author:   "Elena",
		Date:     mustDate("2023-08-17"),
	})
	require.NoError(t, err)
	require.Equal(t, "original-title", created.Slug)

	title := "Completely New Title"
	updated, err := svc.Update(ctx, created.ID, &post.UpdatePostReq{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Completely New Title", updated.Title)
	assert.Equal(t, "original-title", updated.Slug)
}
