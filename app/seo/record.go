package seo

const (
	DefaultPriority        = 0.5
	DefaultChangeFrequency = "weekly"

	Indexable    = "index"
	NotIndexable = "noindex"
)

// Record is a sitemap entry as stored by the CMS SEO tools plugin.
type Record struct {
	URL               string  `json:"url"`
	Indexable         string  `json:"indexable"`
	RemoveFromSitemap bool    `json:"remove_from_sitemap"`
	Priority          float64 `json:"priority"`
	ChangeFrequency   string  `json:"change_frequency"`
}

func NewRecord(fullPath string, indexable bool) Record {
	indexValue := Indexable
	if !indexable {
		indexValue = NotIndexable
	}

	return Record{
		URL:               fullPath,
		Indexable:         indexValue,
		RemoveFromSitemap: false,
		Priority:          DefaultPriority,
		ChangeFrequency:   DefaultChangeFrequency,
	}
}
