package metrics

import "time"

// ResultLabel enumerates per content type outcomes.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	ResultUnknown ResultLabel = "unknown"
)

// Recorder receives run observations. The sync pipeline always holds one;
// NoopRecorder is used when no metrics file is configured.
type Recorder interface {
	AddEntriesFetched(contentType string, n int)
	IncSitemapPost(contentType string, success bool)
	IncContentTypeResult(contentType string, result ResultLabel)
	ObserveRunDuration(d time.Duration)
}

type NoopRecorder struct{}

func (NoopRecorder) AddEntriesFetched(string, int)            {}
func (NoopRecorder) IncSitemapPost(string, bool)              {}
func (NoopRecorder) IncContentTypeResult(string, ResultLabel) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)         {}
