package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_index_store.go -package=mocks searchindex/internal/storage IndexStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"searchindex/internal/dialect"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// IndexStore defines the interface for search index storage operations.
type IndexStore interface {
	// DeleteForEntity deletes all rows of an entity on a site, except rows of the given field IDs.
	DeleteForEntity(ctx context.Context, entityID, siteID int64, keepFieldIDs []int64) error
	// Upsert writes a row, replacing any row with the same key.
	Upsert(ctx context.Context, row *IndexRow) error
	// ListByEntity returns all rows of an entity on a site. Returns ErrNotFound if there are none.
	ListByEntity(ctx context.Context, entityID, siteID int64) ([]IndexRow, error)
	// EntityIDs returns the distinct entity IDs of rows matching where.
	EntityIDs(ctx context.Context, where sq.Sqlizer) ([]int64, error)
	// Rows returns the rows matching where, in table scan order.
	Rows(ctx context.Context, where sq.Sqlizer) ([]IndexRow, error)
	// DeleteEntity deletes every row of an entity across all sites.
	DeleteEntity(ctx context.Context, entityID int64) error
	// DeleteField deletes every row of a custom field.
	DeleteField(ctx context.Context, fieldID int64) error
	// Ping checks database connectivity.
	Ping(ctx context.Context) error
}

// IndexRepo provides methods for search index operations.
// It implements the IndexStore interface.
type IndexRepo struct {
	db      *sql.DB
	dialect dialect.Dialect
}

// NewIndexRepo creates a new IndexRepo.
func NewIndexRepo(db *sql.DB, d dialect.Dialect) *IndexRepo {
	return &IndexRepo{db: db, dialect: d}
}

// DeleteForEntity deletes all rows of an entity on a site, except rows of the given field IDs.
// Used when re-indexing an entity; fields excluded from the pass keep their previous keywords.
func (r *IndexRepo) DeleteForEntity(ctx context.Context, entityID, siteID int64, keepFieldIDs []int64) error {
	where := sq.And{sq.Eq{dialect.ColEntityID: entityID, dialect.ColSiteID: siteID}}
	if len(keepFieldIDs) > 0 {
		where = append(where, sq.NotEq{dialect.ColFieldID: keepFieldIDs})
	}

	query, args, err := sq.Delete(dialect.Table).Where(where).PlaceholderFormat(r.dialect.Placeholder()).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete index rows: %w", err)
	}
	return nil
}

// Upsert writes a row, replacing any row with the same (entity, attribute, field, site) key.
func (r *IndexRepo) Upsert(ctx context.Context, row *IndexRow) error {
	query, args, err := r.dialect.InsertRow(dialect.Row{
		EntityID:  row.EntityID,
		Attribute: row.Attribute,
		FieldID:   row.FieldID,
		SiteID:    row.SiteID,
		Keywords:  row.Keywords,
	}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert index row: %w", err)
	}
	return nil
}

// ListByEntity returns all rows of an entity on a site, ordered by attribute and field.
// Returns ErrNotFound if the entity has no rows.
func (r *IndexRepo) ListByEntity(ctx context.Context, entityID, siteID int64) ([]IndexRow, error) {
	rows, err := r.query(ctx, sq.Eq{dialect.ColEntityID: entityID, dialect.ColSiteID: siteID},
		dialect.ColAttribute, dialect.ColFieldID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

// Rows returns the rows matching where, in table scan order.
// Returns an empty slice if nothing matches (not an error).
func (r *IndexRepo) Rows(ctx context.Context, where sq.Sqlizer) ([]IndexRow, error) {
	return r.query(ctx, where)
}

// EntityIDs returns the distinct entity IDs of rows matching where.
func (r *IndexRepo) EntityIDs(ctx context.Context, where sq.Sqlizer) ([]int64, error) {
	query, args, err := sq.Select(dialect.ColEntityID).
		Distinct().
		From(dialect.Table).
		Where(where).
		PlaceholderFormat(r.dialect.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build entity id query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entity IDs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan entity ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}

// DeleteEntity deletes every row of an entity across all sites.
func (r *IndexRepo) DeleteEntity(ctx context.Context, entityID int64) error {
	return r.delete(ctx, sq.Eq{dialect.ColEntityID: entityID})
}

// DeleteField deletes every row of a custom field across all entities and sites.
func (r *IndexRepo) DeleteField(ctx context.Context, fieldID int64) error {
	return r.delete(ctx, sq.Eq{dialect.ColAttribute: dialect.FieldAttribute, dialect.ColFieldID: fieldID})
}

// Ping checks database connectivity.
func (r *IndexRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *IndexRepo) delete(ctx context.Context, where sq.Sqlizer) error {
	query, args, err := sq.Delete(dialect.Table).Where(where).PlaceholderFormat(r.dialect.Placeholder()).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete index rows: %w", err)
	}
	return nil
}

func (r *IndexRepo) query(ctx context.Context, where sq.Sqlizer, orderBy ...string) ([]IndexRow, error) {
	builder := sq.Select(dialect.ColEntityID, dialect.ColSiteID, dialect.ColAttribute, dialect.ColFieldID, dialect.ColKeywords).
		From(dialect.Table).
		Where(where).
		PlaceholderFormat(r.dialect.Placeholder())
	if len(orderBy) > 0 {
		builder = builder.OrderBy(orderBy...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build index query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query index rows: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []IndexRow{}
	for rows.Next() {
		var row IndexRow
		if err := rows.Scan(&row.EntityID, &row.SiteID, &row.Attribute, &row.FieldID, &row.Keywords); err != nil {
			return nil, fmt.Errorf("failed to scan index row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return result, nil
}
