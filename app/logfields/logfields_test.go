package logfields

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Key drift would break log ingestion.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"TaskID", KeyTaskID, "t1", TaskID("t1")},
		{"TaskType", KeyTaskType, "sync_content_type", TaskType("sync_content_type")},
		{"ContentType", KeyContentType, "posts", ContentType("posts")},
		{"Slug", KeySlug, "news/hello", Slug("news/hello")},
		{"URL", KeyURL, "https://example.com/blog", URL("https://example.com/blog")},
		{"Path", KeyPath, "posts-slugs.csv", Path("posts-slugs.csv")},
		{"Count", KeyCount, "3", Count(3)},
		{"Status", KeyStatus, "500", Status(500)},
		{"Duration", KeyDuration, "1.5s", Duration(1500 * time.Millisecond)},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.attrKey, tc.attr.Key)
			assert.Equal(t, tc.attrVal, tc.attr.Value.String())
		})
	}
}
