package database

import (
	"database/sql"
	"fmt"
	"time"
)

const timeLayout = time.RFC3339Nano

var _ HistoryRepository = (*HistoryStore)(nil)

// HistoryStore handles database operations for run history
type HistoryStore struct {
	db *DB
}

func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

func (s *HistoryStore) StartRun(run Run) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (id, cms_url, website_url, started_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.CMSURL, run.WebsiteURL, run.StartedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

func (s *HistoryStore) FinishRun(runID string, finishedAt time.Time, seoFile string, seoEntries int) error {
	res, err := s.db.Exec(`
		UPDATE runs
		SET finished_at = ?, seo_file = ?, seo_entries = ?
		WHERE id = ?
	`, finishedAt.UTC().Format(timeLayout), seoFile, seoEntries, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}

func (s *HistoryStore) RecordContentTypeResult(runID string, result ContentTypeResult) error {
	_, err := s.db.Exec(`
		INSERT INTO content_type_results (
			run_id, content_type, status, entries, csv_path, posted, failed, error, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, result.ContentType, result.Status, result.Entries, result.CSVPath,
		result.Posted, result.Failed, result.Error, result.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to insert content type result: %w", err)
	}
	return nil
}

func (s *HistoryStore) RecordSitemapEntry(runID string, entry SitemapEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO sitemap_entries (run_id, content_type, slug, url, posted, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, entry.ContentType, entry.Slug, entry.URL, entry.Posted, entry.Error)
	if err != nil {
		return fmt.Errorf("failed to insert sitemap entry: %w", err)
	}
	return nil
}

// GetRun returns nil, nil when the run does not exist.
func (s *HistoryStore) GetRun(runID string) (*Run, error) {
	var run Run
	var startedAt string
	var finishedAt sql.NullString

	err := s.db.QueryRow(`
		SELECT id, cms_url, website_url, started_at, finished_at, seo_file, seo_entries
		FROM runs WHERE id = ?
	`, runID).Scan(&run.ID, &run.CMSURL, &run.WebsiteURL, &startedAt, &finishedAt, &run.SEOFile, &run.SEOEntries)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	run.StartedAt, err = time.Parse(timeLayout, startedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid started_at for run %s: %w", runID, err)
	}
	if finishedAt.Valid {
		t, err := time.Parse(timeLayout, finishedAt.String)
		if err != nil {
			return nil, fmt.Errorf("invalid finished_at for run %s: %w", runID, err)
		}
		run.FinishedAt = &t
	}

	return &run, nil
}

func (s *HistoryStore) GetContentTypeResults(runID string) ([]ContentTypeResult, error) {
	rows, err := s.db.Query(`
		SELECT content_type, status, entries, csv_path, posted, failed, error, duration_ms
		FROM content_type_results
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query content type results: %w", err)
	}
	defer rows.Close()

	var results []ContentTypeResult
	for rows.Next() {
		var r ContentTypeResult
		var durationMS int64
		if err := rows.Scan(&r.ContentType, &r.Status, &r.Entries, &r.CSVPath, &r.Posted, &r.Failed, &r.Error, &durationMS); err != nil {
			return nil, fmt.Errorf("failed to scan content type result: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		results = append(results, r)
	}

	return results, rows.Err()
}

func (s *HistoryStore) GetSitemapEntries(runID string) ([]SitemapEntry, error) {
	rows, err := s.db.Query(`
		SELECT content_type, slug, url, posted, error
		FROM sitemap_entries
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sitemap entries: %w", err)
	}
	defer rows.Close()

	var entries []SitemapEntry
	for rows.Next() {
		var e SitemapEntry
		if err := rows.Scan(&e.ContentType, &e.Slug, &e.URL, &e.Posted, &e.Error); err != nil {
			return nil, fmt.Errorf("failed to scan sitemap entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
