// Package dialect holds the per-backend differences of the search index: schema, column capacity,
// upsert syntax and the native full-text predicate. A Dialect is chosen once at startup and every
// component dispatches through it, so a backend without a vector column can never be asked to filter on one.
package dialect

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Table is the name of the keyword index table.
const Table = "searchindex"

// Index table columns.
const (
	ColEntityID       = "entity_id"
	ColAttribute      = "attribute"
	ColFieldID        = "field_id"
	ColSiteID         = "site_id"
	ColKeywords       = "keywords"
	ColKeywordsVector = "keywords_vector"
)

// FieldAttribute is the attribute value of rows that hold a custom field's keywords.
const FieldAttribute = "field"

// safetyMargin keeps truncated keywords below the true column capacity.
const safetyMargin = 0.95

// Row is the dialect-neutral shape of one index row write.
type Row struct {
	EntityID  int64
	Attribute string
	FieldID   int64
	SiteID    int64
	Keywords  string
}

// Dialect describes one database backend.
type Dialect interface {
	// Name returns the dialect name used in config, logs and metrics.
	Name() string
	// DriverName returns the database/sql driver name.
	DriverName() string
	// Placeholder returns the bind-parameter format of the backend.
	Placeholder() sq.PlaceholderFormat
	// Schema returns the idempotent statements that create the index table.
	Schema() []string
	// KeywordCapacity returns the storage capacity of the keywords column in bytes.
	KeywordCapacity() int
	// KeywordLimit returns the maximum number of keyword bytes written, a safety margin below capacity.
	KeywordLimit() int
	// InsertRow returns an insert that replaces any existing row with the same key.
	InsertRow(row Row) sq.InsertBuilder
	// FullText returns the native full-text support, or nil when the backend only supports LIKE.
	FullText() FullText
}

// FullTextTerm is one normalized term handed to a full-text engine.
type FullTextTerm struct {
	// Words are the normalized words of the term, at least one.
	Words []string
	// Prefix matches any word starting with the last word.
	Prefix bool
	// Exclude negates the term.
	Exclude bool
	// Pattern is the boundary-padded LIKE pattern of the term, used by engines that need a substring check
	// to enforce word order.
	Pattern string
}

// Phrase reports whether the term has more than one word.
func (t FullTextTerm) Phrase() bool {
	return len(t.Words) > 1
}

// FullText builds native full-text predicates against the index table.
type FullText interface {
	// WordEligible reports whether the engine can match a single normalized word.
	WordEligible(word string) bool
	// AllowsPhrases reports whether multi-word text may use the engine.
	AllowsPhrases() bool
	// Match merges terms into a single predicate. Inclusive terms must all match, otherwise any may match.
	Match(terms []FullTextTerm, inclusive bool) sq.Sqlizer
}

// Options configures dialect construction.
type Options struct {
	// MinWordLength is the shortest word the MySQL full-text index stores.
	MinWordLength int
	// StopWords replaces the built-in MySQL stop-word list when non-empty.
	StopWords []string
}

// New returns the dialect for a database/sql driver name.
func New(driver string, opts Options) (Dialect, error) {
	switch driver {
	case "mysql":
		return NewMySQL(opts), nil
	case "postgres", "pgx":
		return NewPostgres(), nil
	case "sqlite3", "sqlite":
		return NewSQLite(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func limitFor(capacity int) int {
	return int(float64(capacity) * safetyMargin)
}

func conjunction(parts []sq.Sqlizer, inclusive bool) sq.Sqlizer {
	if len(parts) == 1 {
		return parts[0]
	}
	if inclusive {
		return sq.And(parts)
	}
	return sq.Or(parts)
}
