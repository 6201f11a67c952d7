package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlugsPosts(t *testing.T) {
	posts, err := DefaultRegistry().Lookup("posts")
	require.NoError(t, err)

	entries := []Entry{
		{"slug": "hello-world", "main_category": map[string]any{"slug": "news"}},
		{"slug": "no-category"},
		{"slug": "null-category", "main_category": nil},
		{"slug": "empty-category", "main_category": map[string]any{"name": "Unnamed"}},
	}

	assert.Equal(t, []string{
		"news/hello-world",
		"no-category",
		"null-category",
		"empty-category",
	}, MapSlugs(posts, entries))
}

func TestMapSlugsIgnoresCategoryForOtherTypes(t *testing.T) {
	pages, err := DefaultRegistry().Lookup("pages")
	require.NoError(t, err)

	entries := []Entry{
		{"slug": "about", "main_category": map[string]any{"slug": "company"}},
		{"slug": "contact"},
	}

	assert.Equal(t, []string{"about", "contact"}, MapSlugs(pages, entries))
}

func TestMapSlugsEmpty(t *testing.T) {
	slugs := MapSlugs(ContentType{Name: "podcasts", Prefix: "/podcast/"}, nil)
	assert.NotNil(t, slugs)
	assert.Empty(t, slugs)
}

func TestEntrySlugNonString(t *testing.T) {
	assert.Equal(t, "42", Entry{"slug": float64(42)}.Slug())
	assert.Equal(t, "", Entry{}.Slug())
}

func TestBuildRecords(t *testing.T) {
	posts := ContentType{Name: "posts", Prefix: "/blog/"}

	records := BuildRecords("https://www.example.com", posts, []string{"news/hello-world", "plain"})

	require.Len(t, records, 3)
	assert.Equal(t, SlugRecord{Slug: IndexRecordSlug, FullPath: "https://www.example.com/blog"}, records[0])
	assert.Equal(t, SlugRecord{Slug: "news/hello-world", FullPath: "https://www.example.com/blog/news/hello-world"}, records[1])
	assert.Equal(t, SlugRecord{Slug: "plain", FullPath: "https://www.example.com/blog/plain"}, records[2])
}

func TestBuildRecordsIndexHasNoTrailingSlash(t *testing.T) {
	for _, ct := range DefaultContentTypes {
		t.Run(ct.Name, func(t *testing.T) {
			records := BuildRecords("https://www.example.com", ct, nil)
			require.Len(t, records, 1)
			assert.False(t, strings.HasSuffix(records[0].FullPath, "/"), "got %s", records[0].FullPath)
		})
	}

	pages := BuildRecords("https://www.example.com", ContentType{Name: "pages", Prefix: "/"}, []string{"about"})
	assert.Equal(t, "https://www.example.com", pages[0].FullPath)
	assert.Equal(t, "https://www.example.com/about", pages[1].FullPath)
}
