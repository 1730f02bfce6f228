package dialect

import sq "github.com/Masterminds/squirrel"

// sqliteTextCapacity is SQLITE_MAX_LENGTH, the largest string SQLite stores by default.
const sqliteTextCapacity = 1000000000

// SQLite has no full-text index; every term compiles to LIKE. It backs local development and tests.
type SQLite struct {
	limit int
}

// NewSQLite creates the SQLite dialect.
func NewSQLite() *SQLite {
	return &SQLite{limit: limitFor(sqliteTextCapacity)}
}

func (d *SQLite) Name() string                      { return "sqlite" }
func (d *SQLite) DriverName() string                { return "sqlite3" }
func (d *SQLite) Placeholder() sq.PlaceholderFormat { return sq.Question }
func (d *SQLite) KeywordCapacity() int              { return sqliteTextCapacity }
func (d *SQLite) KeywordLimit() int                 { return d.limit }
func (d *SQLite) FullText() FullText                { return nil }

func (d *SQLite) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS searchindex (
			entity_id INTEGER NOT NULL,
			attribute TEXT NOT NULL,
			field_id INTEGER NOT NULL DEFAULT 0,
			site_id INTEGER NOT NULL,
			keywords TEXT NOT NULL,
			PRIMARY KEY (entity_id, attribute, field_id, site_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_searchindex_site ON searchindex (site_id);`,
	}
}

func (d *SQLite) InsertRow(row Row) sq.InsertBuilder {
	return sq.Insert(Table).
		Columns(ColEntityID, ColAttribute, ColFieldID, ColSiteID, ColKeywords).
		Values(row.EntityID, row.Attribute, row.FieldID, row.SiteID, row.Keywords).
		Suffix("ON CONFLICT (entity_id, attribute, field_id, site_id) DO UPDATE SET keywords = excluded.keywords").
		PlaceholderFormat(d.Placeholder())
}
