package dialect

import (
	"reflect"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		driver   string
		wantName string
		wantErr  bool
	}{
		{driver: "mysql", wantName: "mysql"},
		{driver: "postgres", wantName: "postgres"},
		{driver: "pgx", wantName: "postgres"},
		{driver: "sqlite3", wantName: "sqlite"},
		{driver: "sqlite", wantName: "sqlite"},
		{driver: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := New(tt.driver, Options{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.driver, err, tt.wantErr)
			}
			if !tt.wantErr && d.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", d.Name(), tt.wantName)
			}
		})
	}
}

func TestKeywordLimit(t *testing.T) {
	tests := []struct {
		name string
		d    Dialect
		want int
	}{
		{name: "mysql", d: NewMySQL(Options{}), want: 62258},
		{name: "postgres", d: NewPostgres(), want: 996146},
		{name: "sqlite", d: NewSQLite(), want: 950000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.KeywordLimit(); got != tt.want {
				t.Errorf("KeywordLimit() = %d, want %d", got, tt.want)
			}
			if tt.d.KeywordLimit() >= tt.d.KeywordCapacity() {
				t.Errorf("KeywordLimit() = %d, want below capacity %d", tt.d.KeywordLimit(), tt.d.KeywordCapacity())
			}
		})
	}
}

func TestFullTextSupport(t *testing.T) {
	if NewSQLite().FullText() != nil {
		t.Error("SQLite FullText() != nil")
	}
	if NewMySQL(Options{}).FullText() == nil {
		t.Error("MySQL FullText() = nil")
	}
	if NewPostgres().FullText() == nil {
		t.Error("Postgres FullText() = nil")
	}
}

func TestInsertRow(t *testing.T) {
	row := Row{EntityID: 1, Attribute: "title", FieldID: 0, SiteID: 2, Keywords: " red car "}

	tests := []struct {
		name       string
		d          Dialect
		wantPrefix string
		wantSuffix string
		wantArgs   []any
	}{
		{
			name:       "mysql",
			d:          NewMySQL(Options{}),
			wantPrefix: "INSERT INTO searchindex (entity_id,attribute,field_id,site_id,keywords) VALUES (?,?,?,?,?)",
			wantSuffix: "ON DUPLICATE KEY UPDATE keywords = VALUES(keywords)",
			wantArgs:   []any{int64(1), "title", int64(0), int64(2), " red car "},
		},
		{
			name:       "postgres",
			d:          NewPostgres(),
			wantPrefix: "INSERT INTO searchindex (entity_id,attribute,field_id,site_id,keywords,keywords_vector) VALUES ($1,$2,$3,$4,$5,to_tsvector('simple', $6))",
			wantSuffix: "DO UPDATE SET keywords = EXCLUDED.keywords, keywords_vector = EXCLUDED.keywords_vector",
			wantArgs:   []any{int64(1), "title", int64(0), int64(2), " red car ", " red car "},
		},
		{
			name:       "sqlite",
			d:          NewSQLite(),
			wantPrefix: "INSERT INTO searchindex (entity_id,attribute,field_id,site_id,keywords) VALUES (?,?,?,?,?)",
			wantSuffix: "DO UPDATE SET keywords = excluded.keywords",
			wantArgs:   []any{int64(1), "title", int64(0), int64(2), " red car "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.d.InsertRow(row).ToSql()
			if err != nil {
				t.Fatalf("ToSql() error = %v", err)
			}
			if !strings.HasPrefix(sql, tt.wantPrefix) {
				t.Errorf("sql = %q, want prefix %q", sql, tt.wantPrefix)
			}
			if !strings.HasSuffix(sql, tt.wantSuffix) {
				t.Errorf("sql = %q, want suffix %q", sql, tt.wantSuffix)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestMySQL_Match(t *testing.T) {
	d := NewMySQL(Options{})

	tests := []struct {
		name      string
		terms     []FullTextTerm
		inclusive bool
		want      string
	}{
		{
			name:      "inclusive prefix",
			terms:     []FullTextTerm{{Words: []string{"engine"}, Prefix: true}},
			inclusive: true,
			want:      "+engine*",
		},
		{
			name:      "group",
			terms:     []FullTextTerm{{Words: []string{"engine"}}, {Words: []string{"turbo"}, Prefix: true}},
			inclusive: false,
			want:      "engine turbo*",
		},
		{
			name:      "excluded",
			terms:     []FullTextTerm{{Words: []string{"engine"}}, {Words: []string{"diesel"}, Exclude: true}},
			inclusive: true,
			want:      "+engine -diesel",
		},
		{
			name:      "phrase quoted",
			terms:     []FullTextTerm{{Words: []string{"twin", "turbo"}}},
			inclusive: true,
			want:      `+"twin turbo"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := d.Match(tt.terms, tt.inclusive).ToSql()
			if err != nil {
				t.Fatalf("ToSql() error = %v", err)
			}
			if sql != "MATCH(keywords) AGAINST(? IN BOOLEAN MODE)" {
				t.Errorf("sql = %q", sql)
			}
			if !reflect.DeepEqual(args, []any{tt.want}) {
				t.Errorf("args = %v, want [%q]", args, tt.want)
			}
		})
	}
}

func TestMySQL_WordEligible(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		word string
		want bool
	}{
		{name: "stop word", word: "the", want: false},
		{name: "too short", word: "car", want: false},
		{name: "long stop word", word: "where", want: false},
		{name: "eligible", word: "engine", want: true},
		{name: "lower min length", opts: Options{MinWordLength: 3}, word: "car", want: true},
		{name: "custom stop words", opts: Options{StopWords: []string{"engine"}}, word: "engine", want: false},
		{name: "custom list replaces default", opts: Options{StopWords: []string{"engine"}}, word: "where", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewMySQL(tt.opts).WordEligible(tt.word); got != tt.want {
				t.Errorf("WordEligible(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}

	if NewMySQL(Options{}).AllowsPhrases() {
		t.Error("AllowsPhrases() = true, want false")
	}
}

func TestPostgres_Match(t *testing.T) {
	d := NewPostgres()

	tests := []struct {
		name      string
		terms     []FullTextTerm
		inclusive bool
		wantSQL   string
		wantArgs  []any
	}{
		{
			name:      "merged words",
			terms:     []FullTextTerm{{Words: []string{"red"}, Prefix: true}, {Words: []string{"car"}}},
			inclusive: true,
			wantSQL:   "keywords_vector @@ ?::tsquery",
			wantArgs:  []any{"red:* & car"},
		},
		{
			name:      "group",
			terms:     []FullTextTerm{{Words: []string{"red"}}, {Words: []string{"blue"}}},
			inclusive: false,
			wantSQL:   "keywords_vector @@ ?::tsquery",
			wantArgs:  []any{"red | blue"},
		},
		{
			name:      "negated word",
			terms:     []FullTextTerm{{Words: []string{"red"}, Exclude: true}},
			inclusive: true,
			wantSQL:   "keywords_vector @@ ?::tsquery",
			wantArgs:  []any{"!red"},
		},
		{
			name:      "negated phrase",
			terms:     []FullTextTerm{{Words: []string{"red", "car"}, Exclude: true, Pattern: "% red car %"}},
			inclusive: true,
			wantSQL:   "NOT ((keywords_vector @@ ?::tsquery AND keywords LIKE ?))",
			wantArgs:  []any{"(red & car)", "% red car %"},
		},
		{
			name:      "phrase prefix",
			terms:     []FullTextTerm{{Words: []string{"twin", "tur"}, Prefix: true, Pattern: "% twin tur%"}},
			inclusive: true,
			wantSQL:   "(keywords_vector @@ ?::tsquery AND keywords LIKE ?)",
			wantArgs:  []any{"(twin & tur:*)", "% twin tur%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := d.Match(tt.terms, tt.inclusive).ToSql()
			if err != nil {
				t.Fatalf("ToSql() error = %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}
