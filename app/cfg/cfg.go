package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	CMSBaseURL     string `long:"cms-url" env:"CMS_BASE_URL" description:"Base URL of the CMS REST API (e.g., https://cms.example.com)" required:"true"`
	WebsiteBaseURL string `long:"website-url" env:"WEBSITE_BASE_URL" description:"Public base URL of the website (e.g., https://www.example.com)" required:"true"`

	ContentTypes     []string `long:"content-type" env:"CONTENT_TYPES" env-delim:"," default:"podcasts" default:"posts" default:"pages" default:"case-studies" description:"Content type to sync, in order (repeatable)"`
	ContentTypesFile string   `long:"content-types-file" env:"CONTENT_TYPES_FILE" description:"YAML file adding or overriding content type URL prefixes"`

	OutputDir   string `long:"output-dir" env:"OUTPUT_DIR" default:"." description:"Directory for CSV and JSON outputs"`
	SEOFile     string `long:"seo-file" env:"SEO_FILE" default:"seoToolsEntries.json" description:"File name of the SEO entries JSON dump"`
	HistoryDB   string `long:"history-db" env:"HISTORY_DB" description:"SQLite file recording run history (optional)"`
	MetricsFile string `long:"metrics-file" env:"METRICS_FILE" description:"Prometheus textfile written at the end of the run (optional)"`

	Timeout   int    `long:"timeout" env:"HTTP_TIMEOUT" default:"0" description:"HTTP timeout in seconds, 0 disables it"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Slug Sync/1.0" description:"User agent string for HTTP requests"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load reads the environment (optionally seeded from a .env file) and the
// process arguments. It returns nil, nil when help was requested.
func Load() (*Cfg, error) {
	if err := loadEnvFile(cmp.Or(os.Getenv("ENV_FILE"), ".env")); err != nil {
		return nil, err
	}
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		CMSBaseURL:       strings.TrimRight(raw.CMSBaseURL, "/"),
		WebsiteBaseURL:   strings.TrimRight(raw.WebsiteBaseURL, "/"),
		ContentTypes:     normalizeList(raw.ContentTypes),
		ContentTypesFile: raw.ContentTypesFile,
		OutputDir:        raw.OutputDir,
		SEOFile:          raw.SEOFile,
		HistoryDB:        raw.HistoryDB,
		MetricsFile:      raw.MetricsFile,
		Timeout:          time.Duration(raw.Timeout) * time.Second,
		UserAgent:        raw.UserAgent,
		Debug:            raw.Debug,
		Version:          GetVersion(),
	}

	if err := validate(cfg, raw.Timeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Cfg, timeout int) error {
	requiredURLs := []struct {
		name  string
		value string
	}{
		{"CMS base URL", cfg.CMSBaseURL},
		{"website base URL", cfg.WebsiteBaseURL},
	}

	for _, u := range requiredURLs {
		parsed, err := url.Parse(u.value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", u.name, u.value, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be absolute, got %q", u.name, u.value)
		}
	}

	if len(cfg.ContentTypes) == 0 {
		return fmt.Errorf("at least one content type is required")
	}
	if timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if cfg.SEOFile == "" {
		return fmt.Errorf("SEO file name is required")
	}

	return nil
}

// loadEnvFile seeds the environment from path without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinOutput(dir, name string) string {
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
