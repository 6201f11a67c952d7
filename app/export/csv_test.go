package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lysyi3m/slug-sync/app/content"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteSlugsCSV(t *testing.T) {
	dir := t.TempDir()
	records := []content.SlugRecord{
		{Slug: content.IndexRecordSlug, FullPath: "https://www.example.com/blog"},
		{Slug: "news/hello", FullPath: "https://www.example.com/blog/news/hello"},
		{Slug: "with,comma", FullPath: "https://www.example.com/blog/with,comma"},
	}

	path, err := WriteSlugsCSV(dir, "posts", records)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "posts-slugs.csv"), path)

	rows := readCSV(t, path)
	assert.Equal(t, [][]string{
		{"SLUG", "FULL PATH"},
		{"TLD with Prefix", "https://www.example.com/blog"},
		{"news/hello", "https://www.example.com/blog/news/hello"},
		{"with,comma", "https://www.example.com/blog/with,comma"},
	}, rows)
}

func TestWriteSlugsCSVOverwrites(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteSlugsCSV(dir, "pages", []content.SlugRecord{
		{Slug: content.IndexRecordSlug, FullPath: "https://www.example.com"},
		{Slug: "old", FullPath: "https://www.example.com/old"},
		{Slug: "older", FullPath: "https://www.example.com/older"},
	})
	require.NoError(t, err)

	path, err := WriteSlugsCSV(dir, "pages", []content.SlugRecord{
		{Slug: content.IndexRecordSlug, FullPath: "https://www.example.com"},
	})
	require.NoError(t, err)

	rows := readCSV(t, path)
	assert.Len(t, rows, 2)
}

func TestWriteSlugsCSVCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "csv")

	path, err := WriteSlugsCSV(dir, "podcasts", nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"SLUG", "FULL PATH"}}, readCSV(t, path))
}

func TestSlugsFileName(t *testing.T) {
	assert.Equal(t, "case-studies-slugs.csv", SlugsFileName("case-studies"))
}
