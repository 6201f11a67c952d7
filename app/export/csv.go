package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lysyi3m/slug-sync/app/content"
)

var slugsHeader = []string{"SLUG", "FULL PATH"}

// SlugsFileName returns the CSV file name for a content type.
func SlugsFileName(contentType string) string {
	return contentType + "-slugs.csv"
}

// WriteSlugsCSV writes records to {dir}/{contentType}-slugs.csv, replacing
// any previous file, and returns the path written.
func WriteSlugsCSV(dir, contentType string, records []content.SlugRecord) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, SlugsFileName(contentType))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(slugsHeader); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, record := range records {
		if err := w.Write([]string{record.Slug, record.FullPath}); err != nil {
			file.Close()
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}
