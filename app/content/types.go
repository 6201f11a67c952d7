package content

import (
	"errors"
	"fmt"
)

// IndexRecordSlug labels the synthetic record that stands for a content
// type's section index page.
const IndexRecordSlug = "TLD with Prefix"

var ErrUnknownContentType = errors.New("unknown content type")

// ContentType maps a CMS collection to the URL section it is published under.
type ContentType struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
	// CategoryField names a relation whose slug is prepended to the
	// entry slug. Empty disables the category prefix.
	CategoryField string `yaml:"category_field"`
}

// Entry is a raw CMS record. Only its slug and the slug of the category
// relation are ever read.
type Entry map[string]any

func (e Entry) Slug() string {
	return stringField(e, "slug")
}

// RelationSlug returns the slug of the related object stored under field.
// ok is false when the relation is missing, null or has no slug.
func (e Entry) RelationSlug(field string) (slug string, ok bool) {
	related, isObject := e[field].(map[string]any)
	if !isObject {
		return "", false
	}
	slug = stringField(related, "slug")
	return slug, slug != ""
}

type SlugRecord struct {
	Slug     string
	FullPath string
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
