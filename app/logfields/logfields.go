package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field names shared by every package.
const (
	KeyRunID       = "run_id"
	KeyTaskID      = "task_id"
	KeyTaskType    = "type"
	KeyContentType = "content_type"
	KeySlug        = "slug"
	KeyURL         = "url"
	KeyPath        = "path"
	KeyCount       = "count"
	KeyStatus      = "status"
	KeyDuration    = "duration"
	KeyError       = "error"
)

func RunID(id string) slog.Attr          { return slog.String(KeyRunID, id) }
func TaskID(id string) slog.Attr         { return slog.String(KeyTaskID, id) }
func TaskType(t string) slog.Attr        { return slog.String(KeyTaskType, t) }
func ContentType(ct string) slog.Attr    { return slog.String(KeyContentType, ct) }
func Slug(s string) slog.Attr            { return slog.String(KeySlug, s) }
func URL(u string) slog.Attr             { return slog.String(KeyURL, u) }
func Path(p string) slog.Attr            { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr              { return slog.Int(KeyCount, n) }
func Status(code int) slog.Attr          { return slog.Int(KeyStatus, code) }
func Duration(d time.Duration) slog.Attr { return slog.Duration(KeyDuration, d) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
