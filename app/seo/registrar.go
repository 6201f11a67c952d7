package seo

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/slug-sync/app/logfields"
)

// Poster delivers a sitemap record to the CMS.
type Poster interface {
	CreateSitemapEntry(ctx context.Context, record Record) error
}

// Registrar builds sitemap records, keeps every record it built and posts
// each one to the CMS. It always creates; existing CMS entries are never
// looked up.
type Registrar struct {
	poster  Poster
	entries []Record
}

func NewRegistrar(poster Poster) *Registrar {
	return &Registrar{
		poster:  poster,
		entries: make([]Record, 0),
	}
}

// Register records the entry for slug and posts it. The record is kept
// even when the post fails; the error is logged and returned so callers
// can count it, never to stop a run.
func (r *Registrar) Register(ctx context.Context, slug, fullPath string) (Record, error) {
	record := NewRecord(fullPath, true)
	r.entries = append(r.entries, record)

	if err := r.poster.CreateSitemapEntry(ctx, record); err != nil {
		slog.Error("Failed to create SEO entry",
			logfields.Slug(slug),
			logfields.URL(fullPath),
			logfields.Error(err))
		return record, err
	}

	slog.Info("Created SEO entry", logfields.Slug(slug), logfields.URL(fullPath))
	return record, nil
}

// Entries returns every record built so far, in call order.
func (r *Registrar) Entries() []Record {
	out := make([]Record, len(r.entries))
	copy(out, r.entries)
	return out
}
