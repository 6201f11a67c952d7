package cfg

import "time"

type Cfg struct {
	// CMS and site
	CMSBaseURL     string
	WebsiteBaseURL string

	// Sync scope
	ContentTypes     []string
	ContentTypesFile string

	// Outputs
	OutputDir   string
	SEOFile     string
	HistoryDB   string
	MetricsFile string

	// HTTP client
	Timeout   time.Duration
	UserAgent string

	Debug   bool
	Version string
}

// SEOFilePath returns the location of the JSON dump inside OutputDir.
func (c *Cfg) SEOFilePath() string {
	return joinOutput(c.OutputDir, c.SEOFile)
}
