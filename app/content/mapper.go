package content

import "strings"

// MapSlugs derives one slug per entry. When ct has a category field and
// the entry carries that relation, the slug becomes "{category}/{slug}".
func MapSlugs(ct ContentType, entries []Entry) []string {
	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		slugs = append(slugs, entrySlug(ct, entry))
	}
	return slugs
}

func entrySlug(ct ContentType, entry Entry) string {
	if ct.CategoryField != "" {
		if category, ok := entry.RelationSlug(ct.CategoryField); ok {
			return category + "/" + entry.Slug()
		}
	}
	return entry.Slug()
}

// BuildRecords composes full public URLs for slugs. The first record is
// always the section index, "{siteBase}{prefix}" without its trailing slash.
func BuildRecords(siteBase string, ct ContentType, slugs []string) []SlugRecord {
	records := make([]SlugRecord, 0, len(slugs)+1)
	records = append(records, SlugRecord{
		Slug:     IndexRecordSlug,
		FullPath: strings.TrimSuffix(siteBase+ct.Prefix, "/"),
	})

	for _, slug := range slugs {
		records = append(records, SlugRecord{
			Slug:     slug,
			FullPath: siteBase + ct.Prefix + slug,
		})
	}

	return records
}
