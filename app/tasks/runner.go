package tasks

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/slug-sync/app/logfields"
)

// Runner executes queued tasks one after another on the calling goroutine.
// A failed task is logged and the next one starts; nothing is retried.
type Runner struct {
	pipeline *Pipeline
	queue    []TaskInterface
}

func NewRunner(pipeline *Pipeline) *Runner {
	return &Runner{pipeline: pipeline}
}

func (r *Runner) EnqueueTask(task TaskInterface) {
	r.queue = append(r.queue, task)
}

// EnqueueContentTypes queues one sync task per content type, in order.
func (r *Runner) EnqueueContentTypes(contentTypes []string) {
	for _, name := range contentTypes {
		r.EnqueueTask(NewSyncContentTypeTask(name, r.pipeline))
	}
}

// Run drains the queue and returns one report per task, in queue order.
func (r *Runner) Run(ctx context.Context) []Report {
	reports := make([]Report, 0, len(r.queue))

	for len(r.queue) > 0 {
		task := r.queue[0]
		r.queue = r.queue[1:]

		reports = append(reports, r.executeTask(ctx, task))
	}

	return reports
}

func (r *Runner) executeTask(ctx context.Context, task TaskInterface) Report {
	task.Start()

	report, err := task.Execute(ctx)
	report.ContentType = task.GetContentType()
	report.Duration = task.GetDuration()
	report.Err = err

	attrs := []any{
		logfields.TaskType(string(task.GetType())),
		logfields.TaskID(task.GetID()),
		logfields.ContentType(task.GetContentType()),
		logfields.Duration(report.Duration),
	}

	switch {
	case err != nil && IsUnknownContentType(err):
		slog.Error("Unknown content type", append(attrs, logfields.Error(err))...)
	case err != nil:
		slog.Error("Task failed", append(attrs, logfields.Error(err))...)
	default:
		slog.Info("Task completed", append(attrs,
			"entries", report.Entries,
			"posted", report.Posted,
			"failed", report.Failed)...)
	}

	r.pipeline.recorder().IncContentTypeResult(report.ContentType, report.Status)

	if r.pipeline.History != nil {
		if err := r.pipeline.History.RecordContentTypeResult(r.pipeline.RunID, report.historyResult()); err != nil {
			slog.Warn("Failed to record content type result", logfields.ContentType(report.ContentType), logfields.Error(err))
		}
	}

	return report
}
