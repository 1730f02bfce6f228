package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"searchindex/internal/dialect"
	"searchindex/internal/handlers"
	"searchindex/internal/indexer"
	"searchindex/internal/lock"
	"searchindex/internal/query"
	"searchindex/internal/search"
	"searchindex/internal/service"
	"searchindex/internal/storage"
)

// newSQLiteRouter wires the full stack on a temporary SQLite database, with field handles loaded from
// a YAML file the way cmd/api does.
func newSQLiteRouter(t *testing.T, fieldsYAML string) http.Handler {
	t.Helper()

	d := dialect.NewSQLite()
	db, err := storage.New(d, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.Migrate(db, d); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "fields.yaml")
	if err := os.WriteFile(path, []byte(fieldsYAML), 0644); err != nil {
		t.Fatalf("failed to write field file: %v", err)
	}
	fields, err := search.LoadFieldResolver(path)
	if err != nil {
		t.Fatalf("LoadFieldResolver() error = %v", err)
	}

	repo := storage.NewIndexRepo(db, d)
	idx := indexer.NewIndexer(repo, lock.NewMemoryLocker(), d)
	searcher := search.NewService(repo, d, fields, true)

	return NewRouter(&Deps{
		IndexService: service.NewIndexService(idx, searcher, query.DefaultOptions()),
		Database:     repo,
		Dialect:      d.Name(),
		Gatherer:     prometheus.NewRegistry(),
	})
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func searchIDs(t *testing.T, router http.Handler, q string) []int64 {
	t.Helper()

	w := serve(t, router, http.MethodGet, "/api/search?q="+q, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/search?q=%s status = %v, body %s", q, w.Code, w.Body.String())
	}
	var resp handlers.SearchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode search response: %v", err)
	}
	return search.Results(resp.Results).IDs()
}

func TestRouter_FieldHandleSearch(t *testing.T) {
	router := newSQLiteRouter(t, "fields:\n  body: [7]\n")

	entity := `{"entity": {"id": 1, "site_id": 1, "title": "Red Car",
		"fields": [{"field_id": 7, "value": "turbo engine"}]}}`
	if w := serve(t, router, http.MethodPost, "/api/index", entity); w.Code != http.StatusOK {
		t.Fatalf("POST /api/index status = %v, body %s", w.Code, w.Body.String())
	}

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "unscoped", query: "engine", want: []int64{1}},
		{name: "field handle", query: "body:engine", want: []int64{1}},
		{name: "field handle is case insensitive", query: "BODY:engine", want: []int64{1}},
		{name: "word only in another attribute", query: "body:car", want: []int64{}},
		{name: "built-in attribute", query: "title:car", want: []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := searchIDs(t, router, tt.query)
			if len(got) != len(tt.want) || (len(got) > 0 && got[0] != tt.want[0]) {
				t.Errorf("search %q = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestRouter_KeywordsAndFieldRemoval(t *testing.T) {
	router := newSQLiteRouter(t, "fields:\n  body: [7]\n")

	entity := `{"entity": {"id": 1, "site_id": 1, "title": "Red Car",
		"fields": [{"field_id": 7, "value": "turbo engine"}]}}`
	if w := serve(t, router, http.MethodPost, "/api/index", entity); w.Code != http.StatusOK {
		t.Fatalf("POST /api/index status = %v, body %s", w.Code, w.Body.String())
	}

	w := serve(t, router, http.MethodGet, "/api/index/1?site_id=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/index/1 status = %v, body %s", w.Code, w.Body.String())
	}
	var resp handlers.KeywordsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode keywords response: %v", err)
	}
	var hasField bool
	for _, row := range resp.Rows {
		if row.FieldID == 7 && row.Keywords == " turbo engine " {
			hasField = true
		}
	}
	if !hasField {
		t.Errorf("GET /api/index/1 rows = %+v, want field 7 keywords", resp.Rows)
	}

	if w := serve(t, router, http.MethodGet, "/api/index/2?site_id=1", ""); w.Code != http.StatusNotFound {
		t.Errorf("GET /api/index/2 status = %v, want %v", w.Code, http.StatusNotFound)
	}

	if w := serve(t, router, http.MethodDelete, "/api/index/fields/7", ""); w.Code != http.StatusNoContent {
		t.Fatalf("DELETE /api/index/fields/7 status = %v, body %s", w.Code, w.Body.String())
	}
	if got := searchIDs(t, router, "body:engine"); len(got) != 0 {
		t.Errorf("search body:engine after field removal = %v, want none", got)
	}
	if got := searchIDs(t, router, "title:car"); len(got) != 1 {
		t.Errorf("search title:car after field removal = %v, want [1]", got)
	}
}
