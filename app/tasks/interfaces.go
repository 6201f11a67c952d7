package tasks

import (
	"context"

	"github.com/lysyi3m/slug-sync/app/content"
)

// Fetcher lists every entry of a CMS collection.
type Fetcher interface {
	FetchEntries(ctx context.Context, contentType string) ([]content.Entry, error)
}
