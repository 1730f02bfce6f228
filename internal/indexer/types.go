package indexer

import (
	"context"
	"fmt"
	"strings"

	"searchindex/internal/keywords"
)

// Built-in attributes indexed for every entity.
const (
	AttrSlug  = "slug"
	AttrTitle = "title"
)

// Entity is the indexable view of one entity on one site.
type Entity struct {
	ID       int64
	SiteID   int64
	Language string // language tag of the site, used for keyword normalization

	Slug      string
	Title     string
	HasTitles bool // whether the entity type has titles; Title is ignored otherwise

	// Attributes holds the raw text of every other searchable attribute, by attribute name.
	Attributes map[string]string

	Fields []FieldValue
}

// FieldValue is a custom field value plus the extractor that knows how to turn it into keywords.
type FieldValue struct {
	FieldID   int64
	Value     any
	Extractor KeywordExtractor
}

// KeywordExtractor returns the raw, unnormalized search keywords of a field value.
type KeywordExtractor interface {
	SearchKeywords(value any, entity *Entity) string
}

// ExtractorFunc adapts a function to KeywordExtractor.
type ExtractorFunc func(value any, entity *Entity) string

// SearchKeywords calls f.
func (f ExtractorFunc) SearchKeywords(value any, entity *Entity) string {
	return f(value, entity)
}

// PlainText indexes the value's string form.
var PlainText = ExtractorFunc(func(value any, _ *Entity) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
})

// List indexes every element of a string slice, such as tags or checkbox options.
var List = ExtractorFunc(func(value any, e *Entity) string {
	items, ok := value.([]string)
	if !ok {
		return PlainText(value, e)
	}
	return strings.Join(items, " ")
})

// Markdown indexes the readable text of a markdown value.
var Markdown = ExtractorFunc(func(value any, e *Entity) string {
	switch v := value.(type) {
	case string:
		return keywords.MarkdownText([]byte(v))
	case []byte:
		return keywords.MarkdownText(v)
	default:
		return PlainText(value, e)
	}
})

// IndexEvent describes one keyword row about to be written.
type IndexEvent struct {
	EntityID  int64
	SiteID    int64
	Attribute string
	FieldID   int64
	Keywords  string // raw keywords, before normalization
}

// KeywordIndexObserver is called synchronously before each row is written. It returns the keywords to
// index, which may differ from ev.Keywords, and false to skip this row only.
type KeywordIndexObserver interface {
	BeforeIndex(ctx context.Context, ev IndexEvent) (string, bool)
}

type nopObserver struct{}

func (nopObserver) BeforeIndex(_ context.Context, ev IndexEvent) (string, bool) {
	return ev.Keywords, true
}

// Stats summarizes an indexing run.
type Stats struct {
	EntitiesIndexed int `json:"entities_indexed"`
	EntitiesSkipped int `json:"entities_skipped"` // lock held by another writer
	EntitiesFailed  int `json:"entities_failed"`
	RowsWritten     int `json:"rows_written"`
	RowsCanceled    int `json:"rows_canceled"`
	RowsTruncated   int `json:"rows_truncated"`
}

func (s *Stats) add(o Stats) {
	s.EntitiesIndexed += o.EntitiesIndexed
	s.EntitiesSkipped += o.EntitiesSkipped
	s.EntitiesFailed += o.EntitiesFailed
	s.RowsWritten += o.RowsWritten
	s.RowsCanceled += o.RowsCanceled
	s.RowsTruncated += o.RowsTruncated
}
