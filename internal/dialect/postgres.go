package dialect

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// postgresVectorCapacity is the hard size ceiling of a tsvector value.
const postgresVectorCapacity = 1048575

// Postgres is the tsvector/tsquery dialect. Keywords are mirrored into keywords_vector on every write.
type Postgres struct {
	limit int
}

// NewPostgres creates the Postgres dialect.
func NewPostgres() *Postgres {
	return &Postgres{limit: limitFor(postgresVectorCapacity)}
}

func (d *Postgres) Name() string                      { return "postgres" }
func (d *Postgres) DriverName() string                { return "pgx" }
func (d *Postgres) Placeholder() sq.PlaceholderFormat { return sq.Dollar }
func (d *Postgres) KeywordCapacity() int              { return postgresVectorCapacity }
func (d *Postgres) KeywordLimit() int                 { return d.limit }
func (d *Postgres) FullText() FullText                { return d }

func (d *Postgres) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS searchindex (
			entity_id BIGINT NOT NULL,
			attribute VARCHAR(25) NOT NULL,
			field_id BIGINT NOT NULL DEFAULT 0,
			site_id BIGINT NOT NULL,
			keywords TEXT NOT NULL,
			keywords_vector TSVECTOR NOT NULL,
			PRIMARY KEY (entity_id, attribute, field_id, site_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_searchindex_keywords_vector ON searchindex USING GIN (keywords_vector);`,
		`CREATE INDEX IF NOT EXISTS idx_searchindex_site ON searchindex (site_id);`,
	}
}

func (d *Postgres) InsertRow(row Row) sq.InsertBuilder {
	return sq.Insert(Table).
		Columns(ColEntityID, ColAttribute, ColFieldID, ColSiteID, ColKeywords, ColKeywordsVector).
		Values(row.EntityID, row.Attribute, row.FieldID, row.SiteID, row.Keywords,
			sq.Expr("to_tsvector('simple', ?)", row.Keywords)).
		Suffix("ON CONFLICT (entity_id, attribute, field_id, site_id) DO UPDATE SET keywords = EXCLUDED.keywords, keywords_vector = EXCLUDED.keywords_vector").
		PlaceholderFormat(d.Placeholder())
}

// WordEligible accepts every word; the simple configuration has no stop words.
func (d *Postgres) WordEligible(string) bool {
	return true
}

func (d *Postgres) AllowsPhrases() bool {
	return true
}

// Match merges single-word terms into one keywords_vector @@ ?::tsquery call. A tsquery AND does not
// enforce word order, so each phrase term additionally requires its LIKE pattern.
func (d *Postgres) Match(terms []FullTextTerm, inclusive bool) sq.Sqlizer {
	glue := " | "
	if inclusive {
		glue = " & "
	}

	var lexemes []string
	var parts []sq.Sqlizer
	for _, t := range terms {
		if t.Phrase() {
			positive := t
			positive.Exclude = false
			phrase := sq.And{
				sq.Expr("keywords_vector @@ ?::tsquery", tsQuery(positive)),
				sq.Expr("keywords LIKE ?", t.Pattern),
			}
			if t.Exclude {
				parts = append(parts, sq.Expr("NOT (?)", phrase))
			} else {
				parts = append(parts, phrase)
			}
			continue
		}
		lexemes = append(lexemes, tsQuery(t))
	}

	if len(lexemes) > 0 {
		merged := sq.Expr("keywords_vector @@ ?::tsquery", strings.Join(lexemes, glue))
		parts = append([]sq.Sqlizer{merged}, parts...)
	}

	return conjunction(parts, inclusive)
}

// tsQuery renders one term: words joined with &, ":*" on the last word for prefix matching, "!" to negate.
func tsQuery(t FullTextTerm) string {
	words := make([]string, len(t.Words))
	copy(words, t.Words)
	if t.Prefix {
		words[len(words)-1] += ":*"
	}

	q := strings.Join(words, " & ")
	if len(words) > 1 {
		q = "(" + q + ")"
	}
	if t.Exclude {
		q = "!" + q
	}
	return q
}
