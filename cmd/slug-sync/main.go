package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/lysyi3m/slug-sync/app/cfg"
	"github.com/lysyi3m/slug-sync/app/cms"
	"github.com/lysyi3m/slug-sync/app/content"
	"github.com/lysyi3m/slug-sync/app/database"
	"github.com/lysyi3m/slug-sync/app/logfields"
	"github.com/lysyi3m/slug-sync/app/metrics"
	"github.com/lysyi3m/slug-sync/app/seo"
	"github.com/lysyi3m/slug-sync/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// help was shown
		return
	}

	setupLogging(appCfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, appCfg); err != nil {
		slog.Error("Slug sync failed", logfields.Error(err))
		stop()
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
}

// run performs one sync. Per content type failures are logged and
// reported; only setup errors and a failed JSON dump are returned.
func run(ctx context.Context, appCfg *cfg.Cfg) error {
	runID := uuid.NewString()
	startedAt := time.Now()

	slog.Info("Starting slug sync",
		logfields.RunID(runID),
		"version", appCfg.Version,
		"cms", appCfg.CMSBaseURL,
		"website", appCfg.WebsiteBaseURL,
		"content_types", appCfg.ContentTypes)

	registry := content.DefaultRegistry()
	if appCfg.ContentTypesFile != "" {
		if err := registry.LoadFile(appCfg.ContentTypesFile); err != nil {
			return fmt.Errorf("failed to load content types from %s: %w", appCfg.ContentTypesFile, err)
		}
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var promRecorder *metrics.PrometheusRecorder
	if appCfg.MetricsFile != "" {
		promRecorder = metrics.NewPrometheusRecorder()
		recorder = promRecorder
	}

	var history *database.HistoryStore
	if appCfg.HistoryDB != "" {
		db, err := database.Open(appCfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()

		history = database.NewHistoryStore(db)
		if err := history.StartRun(database.Run{
			ID:         runID,
			CMSURL:     appCfg.CMSBaseURL,
			WebsiteURL: appCfg.WebsiteBaseURL,
			StartedAt:  startedAt,
		}); err != nil {
			return err
		}
	}

	client := cms.NewClient(appCfg.CMSBaseURL, appCfg.UserAgent, appCfg.Timeout)
	registrar := seo.NewRegistrar(client)

	pipeline := &tasks.Pipeline{
		RunID:     runID,
		SiteBase:  appCfg.WebsiteBaseURL,
		OutputDir: appCfg.OutputDir,
		Registry:  registry,
		Fetcher:   client,
		Registrar: registrar,
		Recorder:  recorder,
	}
	if history != nil {
		pipeline.History = history
	}

	runner := tasks.NewRunner(pipeline)
	runner.EnqueueContentTypes(appCfg.ContentTypes)
	reports := runner.Run(ctx)

	entries := registrar.Entries()
	seoPath := appCfg.SEOFilePath()
	if err := seo.WriteJSON(seoPath, entries); err != nil {
		return err
	}
	slog.Info("Data written", logfields.Path(seoPath), logfields.Count(len(entries)))

	duration := time.Since(startedAt)
	recorder.ObserveRunDuration(duration)

	if promRecorder != nil {
		if err := promRecorder.WriteTextfile(appCfg.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics", logfields.Path(appCfg.MetricsFile), logfields.Error(err))
		}
	}

	if history != nil {
		if err := history.FinishRun(runID, time.Now(), seoPath, len(entries)); err != nil {
			slog.Warn("Failed to record run completion", logfields.Error(err))
		}
	}

	logSummary(runID, reports, duration)
	return nil
}

func logSummary(runID string, reports []tasks.Report, duration time.Duration) {
	var succeeded, failed, posted, postFailures int
	for _, r := range reports {
		if r.Err != nil {
			failed++
		} else {
			succeeded++
		}
		posted += r.Posted
		postFailures += r.Failed
	}

	slog.Info("Slug sync finished",
		logfields.RunID(runID),
		logfields.Duration(duration),
		"content_types_ok", succeeded,
		"content_types_failed", failed,
		"sitemap_posted", posted,
		"sitemap_failed", postFailures)
}
