package database

import (
	"time"
)

// HistoryRepository records what a run did. Nothing in a sync reads it back.
type HistoryRepository interface {
	StartRun(run Run) error
	FinishRun(runID string, finishedAt time.Time, seoFile string, seoEntries int) error

	RecordContentTypeResult(runID string, result ContentTypeResult) error
	RecordSitemapEntry(runID string, entry SitemapEntry) error
}
