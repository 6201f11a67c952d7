package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/slug-sync/app/content"
	"github.com/lysyi3m/slug-sync/app/database"
	"github.com/lysyi3m/slug-sync/app/export"
	"github.com/lysyi3m/slug-sync/app/logfields"
	"github.com/lysyi3m/slug-sync/app/metrics"
	"github.com/lysyi3m/slug-sync/app/seo"
)

// Pipeline holds what every content type task of a run shares. Recorder and
// History are optional.
type Pipeline struct {
	RunID     string
	SiteBase  string
	OutputDir string
	Registry  *content.Registry
	Fetcher   Fetcher
	Registrar *seo.Registrar
	Recorder  metrics.Recorder
	History   database.HistoryRepository
}

func (p *Pipeline) recorder() metrics.Recorder {
	if p.Recorder == nil {
		return metrics.NoopRecorder{}
	}
	return p.Recorder
}

type SyncContentTypeTask struct {
	Task
	pipeline *Pipeline
}

func NewSyncContentTypeTask(contentType string, pipeline *Pipeline) *SyncContentTypeTask {
	return &SyncContentTypeTask{
		Task:     NewTask(TaskTypeSyncContentType, contentType),
		pipeline: pipeline,
	}
}

// Execute fetches the collection, writes its CSV and registers one sitemap
// record per entry. Only failures before the CSV is written abort the
// content type; failed sitemap posts are counted in the report.
func (t *SyncContentTypeTask) Execute(ctx context.Context) (Report, error) {
	report := Report{ContentType: t.ContentType, Status: metrics.ResultFailed}

	select {
	case <-ctx.Done():
		return report, ctx.Err()
	default:
	}

	ct, err := t.pipeline.Registry.Lookup(t.ContentType)
	if err != nil {
		report.Status = metrics.ResultUnknown
		return report, err
	}

	entries, err := t.pipeline.Fetcher.FetchEntries(ctx, ct.Name)
	if err != nil {
		return report, fmt.Errorf("failed to fetch slugs for %s: %w", ct.Name, err)
	}
	report.Entries = len(entries)
	t.pipeline.recorder().AddEntriesFetched(ct.Name, len(entries))

	slugs := content.MapSlugs(ct, entries)
	slog.Debug("Slugs mapped", logfields.ContentType(ct.Name), logfields.Count(len(slugs)), "slugs", slugs)

	records := content.BuildRecords(t.pipeline.SiteBase, ct, slugs)

	csvPath, err := export.WriteSlugsCSV(t.pipeline.OutputDir, ct.Name, records)
	if err != nil {
		return report, fmt.Errorf("failed to write CSV for %s: %w", ct.Name, err)
	}
	report.CSVPath = csvPath
	report.Rows = len(records)
	slog.Info("CSV written", logfields.ContentType(ct.Name), logfields.Path(csvPath), logfields.Count(len(records)))

	// the index record is listed in the CSV but never registered
	for _, record := range records[1:] {
		_, postErr := t.pipeline.Registrar.Register(ctx, record.Slug, record.FullPath)
		if postErr != nil {
			report.Failed++
		} else {
			report.Posted++
		}
		t.pipeline.recorder().IncSitemapPost(ct.Name, postErr == nil)
		t.recordSitemapEntry(ct.Name, record, postErr)
	}

	report.Status = metrics.ResultSuccess
	return report, nil
}

func (t *SyncContentTypeTask) recordSitemapEntry(contentType string, record content.SlugRecord, postErr error) {
	if t.pipeline.History == nil {
		return
	}

	entry := database.SitemapEntry{
		ContentType: contentType,
		Slug:        record.Slug,
		URL:         record.FullPath,
		Posted:      postErr == nil,
	}
	if postErr != nil {
		entry.Error = postErr.Error()
	}

	if err := t.pipeline.History.RecordSitemapEntry(t.pipeline.RunID, entry); err != nil {
		slog.Warn("Failed to record sitemap entry", logfields.ContentType(contentType), logfields.URL(record.FullPath), logfields.Error(err))
	}
}

// IsUnknownContentType reports whether err came from a content type that
// is not registered.
func IsUnknownContentType(err error) bool {
	return errors.Is(err, content.ErrUnknownContentType)
}
