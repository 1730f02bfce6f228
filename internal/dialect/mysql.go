package dialect

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"searchindex/internal/keywords"
)

const (
	// mysqlTextCapacity is the storage capacity of a MySQL TEXT column.
	mysqlTextCapacity = 65535
	// DefaultMinWordLength mirrors the ft_min_word_len server default.
	DefaultMinWordLength = 4
)

// MySQL is the MATCH ... AGAINST boolean-mode dialect.
type MySQL struct {
	limit     int
	stopWords *keywords.StopWords
}

// NewMySQL creates the MySQL dialect. The stop-word set is built here, once.
func NewMySQL(opts Options) *MySQL {
	minLength := opts.MinWordLength
	if minLength <= 0 {
		minLength = DefaultMinWordLength
	}
	words := opts.StopWords
	if len(words) == 0 {
		words = keywords.DefaultStopWords
	}
	return &MySQL{
		limit:     limitFor(mysqlTextCapacity),
		stopWords: keywords.NewStopWords(words, minLength),
	}
}

func (d *MySQL) Name() string                      { return "mysql" }
func (d *MySQL) DriverName() string                { return "mysql" }
func (d *MySQL) Placeholder() sq.PlaceholderFormat { return sq.Question }
func (d *MySQL) KeywordCapacity() int              { return mysqlTextCapacity }
func (d *MySQL) KeywordLimit() int                 { return d.limit }
func (d *MySQL) FullText() FullText                { return d }

func (d *MySQL) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS searchindex (
			entity_id BIGINT NOT NULL,
			attribute VARCHAR(25) NOT NULL,
			field_id BIGINT NOT NULL DEFAULT 0,
			site_id BIGINT NOT NULL,
			keywords TEXT NOT NULL,
			PRIMARY KEY (entity_id, attribute, field_id, site_id),
			FULLTEXT KEY idx_searchindex_keywords (keywords)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	}
}

func (d *MySQL) InsertRow(row Row) sq.InsertBuilder {
	return sq.Insert(Table).
		Columns(ColEntityID, ColAttribute, ColFieldID, ColSiteID, ColKeywords).
		Values(row.EntityID, row.Attribute, row.FieldID, row.SiteID, row.Keywords).
		Suffix("ON DUPLICATE KEY UPDATE keywords = VALUES(keywords)").
		PlaceholderFormat(d.Placeholder())
}

// WordEligible rejects words below ft_min_word_len and stop words; InnoDB never indexes either.
func (d *MySQL) WordEligible(word string) bool {
	return d.stopWords.Eligible(word)
}

// AllowsPhrases is false: boolean-mode phrase search with "+" markers misbehaves on multi-word input,
// so those terms use LIKE instead.
func (d *MySQL) AllowsPhrases() bool {
	return false
}

// Match renders MATCH(keywords) AGAINST(? IN BOOLEAN MODE) with one "+word*"-style entry per term.
func (d *MySQL) Match(terms []FullTextTerm, inclusive bool) sq.Sqlizer {
	entries := make([]string, 0, len(terms))
	for _, t := range terms {
		entry := strings.Join(t.Words, " ")
		if t.Prefix {
			entry += "*"
		}
		if t.Phrase() {
			entry = `"` + entry + `"`
		}
		switch {
		case t.Exclude:
			entry = "-" + entry
		case inclusive:
			entry = "+" + entry
		}
		entries = append(entries, entry)
	}
	return sq.Expr("MATCH(keywords) AGAINST(? IN BOOLEAN MODE)", strings.Join(entries, " "))
}
