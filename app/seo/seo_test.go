package seo

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPoster struct {
	posted  []Record
	failFor map[string]bool
}

func (m *mockPoster) CreateSitemapEntry(_ context.Context, record Record) error {
	if m.failFor[record.URL] {
		return errors.New("forced failure")
	}
	m.posted = append(m.posted, record)
	return nil
}

func TestNewRecordDefaults(t *testing.T) {
	record := NewRecord("https://www.example.com/blog/hello", true)

	assert.Equal(t, Record{
		URL:               "https://www.example.com/blog/hello",
		Indexable:         "index",
		RemoveFromSitemap: false,
		Priority:          0.5,
		ChangeFrequency:   "weekly",
	}, record)

	assert.Equal(t, "noindex", NewRecord("https://www.example.com/x", false).Indexable)
}

func TestRecordJSONShape(t *testing.T) {
	data, err := json.Marshal(NewRecord("https://www.example.com/about", true))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"url": "https://www.example.com/about",
		"indexable": "index",
		"remove_from_sitemap": false,
		"priority": 0.5,
		"change_frequency": "weekly"
	}`, string(data))
}

func TestRegistrarAccumulatesInOrder(t *testing.T) {
	poster := &mockPoster{}
	r := NewRegistrar(poster)

	_, err := r.Register(context.Background(), "a", "https://www.example.com/a")
	require.NoError(t, err)
	_, err = r.Register(context.Background(), "b", "https://www.example.com/b")
	require.NoError(t, err)

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "https://www.example.com/a", entries[0].URL)
	assert.Equal(t, "https://www.example.com/b", entries[1].URL)
	assert.Equal(t, entries, poster.posted)
}

func TestRegistrarKeepsRecordWhenPostFails(t *testing.T) {
	poster := &mockPoster{failFor: map[string]bool{"https://www.example.com/bad": true}}
	r := NewRegistrar(poster)

	_, err := r.Register(context.Background(), "bad", "https://www.example.com/bad")
	assert.Error(t, err)
	_, err = r.Register(context.Background(), "good", "https://www.example.com/good")
	assert.NoError(t, err)

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "https://www.example.com/bad", entries[0].URL)
	assert.Len(t, poster.posted, 1)
}

func TestRegistrarEntriesIsACopy(t *testing.T) {
	r := NewRegistrar(&mockPoster{})
	_, _ = r.Register(context.Background(), "a", "https://www.example.com/a")

	entries := r.Entries()
	entries[0].URL = "mutated"

	assert.Equal(t, "https://www.example.com/a", r.Entries()[0].URL)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "seoToolsEntries.json")
	records := []Record{
		NewRecord("https://www.example.com/a", true),
		NewRecord("https://www.example.com/b", true),
	}

	require.NoError(t, WriteJSON(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := `[
  {
    "url": "https://www.example.com/a",
    "indexable": "index",
    "remove_from_sitemap": false,
    "priority": 0.5,
    "change_frequency": "weekly"
  },
  {
    "url": "https://www.example.com/b",
    "indexable": "index",
    "remove_from_sitemap": false,
    "priority": 0.5,
    "change_frequency": "weekly"
  }
]`
	assert.Equal(t, expected, string(data))
}

func TestWriteJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seoToolsEntries.json")

	require.NoError(t, WriteJSON(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteJSONUnwritable(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be
	path := filepath.Join(dir, "seoToolsEntries.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	assert.Error(t, WriteJSON(path, []Record{NewRecord("https://www.example.com/a", true)}))
}
