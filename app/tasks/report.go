package tasks

import (
	"time"

	"github.com/lysyi3m/slug-sync/app/database"
	"github.com/lysyi3m/slug-sync/app/metrics"
)

// Report summarizes one content type of a run.
type Report struct {
	ContentType string
	Status      metrics.ResultLabel
	Entries     int
	CSVPath     string
	Rows        int // CSV data rows, index row included
	Posted      int
	Failed      int
	Err         error
	Duration    time.Duration
}

func (r Report) historyResult() database.ContentTypeResult {
	result := database.ContentTypeResult{
		ContentType: r.ContentType,
		Status:      string(r.Status),
		Entries:     r.Entries,
		CSVPath:     r.CSVPath,
		Posted:      r.Posted,
		Failed:      r.Failed,
		Duration:    r.Duration,
	}
	if r.Err != nil {
		result.Error = r.Err.Error()
	}
	return result
}
