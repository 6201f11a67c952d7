package database

import (
	"time"
)

type Run struct {
	ID         string
	CMSURL     string
	WebsiteURL string
	StartedAt  time.Time
	FinishedAt *time.Time
	SEOFile    string
	SEOEntries int
}

type ContentTypeResult struct {
	ContentType string
	Status      string // success, failed, unknown
	Entries     int
	CSVPath     string
	Posted      int
	Failed      int
	Error       string
	Duration    time.Duration
}

type SitemapEntry struct {
	ContentType string
	Slug        string
	URL         string
	Posted      bool
	Error       string
}
