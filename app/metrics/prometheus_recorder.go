package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "slugsync"

var _ Recorder = (*PrometheusRecorder)(nil)

// PrometheusRecorder implements Recorder on a dedicated registry so a run
// can be dumped as a node-exporter textfile.
type PrometheusRecorder struct {
	registry       *prom.Registry
	entriesFetched *prom.CounterVec
	sitemapPosts   *prom.CounterVec
	typeResults    *prom.CounterVec
	runDuration    prom.Gauge
}

func NewPrometheusRecorder() *PrometheusRecorder {
	pr := &PrometheusRecorder{
		registry: prom.NewRegistry(),
		entriesFetched: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "entries_fetched_total",
			Help:      "CMS entries fetched per content type",
		}, []string{"content_type"}),
		sitemapPosts: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "sitemap_posts_total",
			Help:      "Sitemap records posted to the CMS by result",
		}, []string{"content_type", "result"}),
		typeResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "content_type_results_total",
			Help:      "Content type sync outcomes",
		}, []string{"content_type", "result"}),
		runDuration: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run",
		}),
	}
	pr.registry.MustRegister(pr.entriesFetched, pr.sitemapPosts, pr.typeResults, pr.runDuration)
	return pr
}

func (p *PrometheusRecorder) AddEntriesFetched(contentType string, n int) {
	p.entriesFetched.WithLabelValues(contentType).Add(float64(n))
}

func (p *PrometheusRecorder) IncSitemapPost(contentType string, success bool) {
	result := ResultSuccess
	if !success {
		result = ResultFailed
	}
	p.sitemapPosts.WithLabelValues(contentType, string(result)).Inc()
}

func (p *PrometheusRecorder) IncContentTypeResult(contentType string, result ResultLabel) {
	p.typeResults.WithLabelValues(contentType, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	p.runDuration.Set(d.Seconds())
}

func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.registry
}

// WriteTextfile dumps every collected metric to path in the text
// exposition format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
