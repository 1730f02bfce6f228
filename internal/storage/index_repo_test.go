package storage

import (
	"context"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"searchindex/internal/dialect"
)

func seedRows(t *testing.T, repo *IndexRepo, rows []IndexRow) {
	t.Helper()
	for i := range rows {
		if err := repo.Upsert(context.Background(), &rows[i]); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}
}

func TestIndexRepo_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewIndexRepo(db, dialect.NewSQLite())
	ctx := context.Background()

	row := &IndexRow{EntityID: 1, SiteID: 1, Attribute: "title", Keywords: " red car "}
	if err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	// Same key again replaces instead of duplicating
	row.Keywords = " blue car "
	if err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("Upsert() second error = %v", err)
	}

	rows, err := repo.ListByEntity(ctx, 1, 1)
	if err != nil {
		t.Fatalf("ListByEntity() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("ListByEntity() returned %d rows, want 1", len(rows))
	}
	if rows[0].Keywords != " blue car " {
		t.Errorf("Keywords = %q, want %q", rows[0].Keywords, " blue car ")
	}
}

func TestIndexRepo_ListByEntity_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewIndexRepo(db, dialect.NewSQLite())

	_, err := repo.ListByEntity(context.Background(), 42, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ListByEntity() error = %v, want ErrNotFound", err)
	}
}

func TestIndexRepo_DeleteForEntity(t *testing.T) {
	tests := []struct {
		name      string
		keep      []int64
		wantCount int
	}{
		{name: "delete everything", keep: nil, wantCount: 0},
		{name: "keep skipped field", keep: []int64{7}, wantCount: 1},
		{name: "keep unknown field", keep: []int64{99}, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			repo := NewIndexRepo(db, dialect.NewSQLite())
			ctx := context.Background()

			seedRows(t, repo, []IndexRow{
				{EntityID: 1, SiteID: 1, Attribute: "title", Keywords: " red car "},
				{EntityID: 1, SiteID: 1, Attribute: "slug", Keywords: " red car "},
				{EntityID: 1, SiteID: 1, Attribute: "field", FieldID: 7, Keywords: " fast "},
				{EntityID: 1, SiteID: 2, Attribute: "title", Keywords: " rotes auto "},
			})

			if err := repo.DeleteForEntity(ctx, 1, 1, tt.keep); err != nil {
				t.Fatalf("DeleteForEntity() error = %v", err)
			}

			rows, err := repo.Rows(ctx, sq.Eq{"site_id": 1})
			if err != nil {
				t.Fatalf("Rows() error = %v", err)
			}
			if len(rows) != tt.wantCount {
				t.Errorf("DeleteForEntity() left %d rows, want %d", len(rows), tt.wantCount)
			}

			// Other sites are untouched
			other, err := repo.ListByEntity(ctx, 1, 2)
			if err != nil {
				t.Fatalf("ListByEntity() site 2 error = %v", err)
			}
			if len(other) != 1 {
				t.Errorf("site 2 rows = %d, want 1", len(other))
			}
		})
	}
}

func TestIndexRepo_EntityIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewIndexRepo(db, dialect.NewSQLite())
	ctx := context.Background()

	seedRows(t, repo, []IndexRow{
		{EntityID: 1, SiteID: 1, Attribute: "title", Keywords: " red car "},
		{EntityID: 1, SiteID: 1, Attribute: "slug", Keywords: " red car "},
		{EntityID: 2, SiteID: 1, Attribute: "title", Keywords: " blue bike "},
	})

	ids, err := repo.EntityIDs(ctx, sq.Like{"keywords": "% car %"})
	if err != nil {
		t.Fatalf("EntityIDs() error = %v", err)
	}
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("EntityIDs() = %v, want [1]", ids)
	}

	ids, err = repo.EntityIDs(ctx, sq.Like{"keywords": "% train %"})
	if err != nil {
		t.Fatalf("EntityIDs() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("EntityIDs() = %v, want none", ids)
	}
}

func TestIndexRepo_DeleteEntityAndField(t *testing.T) {
	db := newTestDB(t)
	repo := NewIndexRepo(db, dialect.NewSQLite())
	ctx := context.Background()

	seedRows(t, repo, []IndexRow{
		{EntityID: 1, SiteID: 1, Attribute: "title", Keywords: " red car "},
		{EntityID: 1, SiteID: 2, Attribute: "title", Keywords: " rotes auto "},
		{EntityID: 2, SiteID: 1, Attribute: "field", FieldID: 7, Keywords: " fast "},
		{EntityID: 2, SiteID: 1, Attribute: "title", Keywords: " bike "},
	})

	if err := repo.DeleteEntity(ctx, 1); err != nil {
		t.Fatalf("DeleteEntity() error = %v", err)
	}
	if err := repo.DeleteField(ctx, 7); err != nil {
		t.Fatalf("DeleteField() error = %v", err)
	}

	rows, err := repo.Rows(ctx, sq.Eq{"site_id": []int64{1, 2}})
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}
	if rows[0].EntityID != 2 || rows[0].Attribute != "title" {
		t.Errorf("remaining row = %+v, want entity 2 title", rows[0])
	}
}
