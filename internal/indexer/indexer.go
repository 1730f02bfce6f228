package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"searchindex/internal/contextutil"
	"searchindex/internal/dialect"
	"searchindex/internal/keywords"
	"searchindex/internal/lock"
	"searchindex/internal/metrics"
	"searchindex/internal/storage"
)

// Indexer maintains the keyword rows of entities.
// It is safe for concurrent use; writes for the same entity and site are serialized by a named lock.
type Indexer struct {
	store      storage.IndexStore
	locker     lock.Locker
	normalizer *keywords.Normalizer
	observer   KeywordIndexObserver
	limit      int // maximum unpadded keyword bytes
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithObserver installs a before-index observer.
func WithObserver(o KeywordIndexObserver) Option {
	return func(i *Indexer) {
		i.observer = o
	}
}

// NewIndexer creates a new Indexer. The keyword size limit is taken from the dialect once, here.
func NewIndexer(store storage.IndexStore, locker lock.Locker, d dialect.Dialect, opts ...Option) *Indexer {
	i := &Indexer{
		store:      store,
		locker:     locker,
		normalizer: keywords.NewNormalizer(),
		observer:   nopObserver{},
		// Two bytes for the boundary padding.
		limit: d.KeywordLimit() - 2,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// IndexKeywords rewrites the keyword rows of an entity on its site.
// Rows of fields in skipFieldIDs are neither deleted nor rewritten. If another writer holds the entity's
// lock the call returns nil without writing: the other writer's rows are current enough and indexing can
// always be triggered again.
func (i *Indexer) IndexKeywords(ctx context.Context, e Entity, skipFieldIDs []int64) error {
	_, err := i.index(ctx, e, skipFieldIDs)
	return err
}

// IndexAll indexes every entity. Errors for individual entities are logged but don't stop the run.
func (i *Indexer) IndexAll(ctx context.Context, entities []Entity) (Stats, error) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "starting indexing", "entities", len(entities))

	var total Stats
	for _, e := range entities {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}

		stats, err := i.index(ctx, e, nil)
		total.add(stats)
		if err != nil {
			total.EntitiesFailed++
			logger.ErrorContext(ctx, "failed to index entity", "entity_id", e.ID, "site_id", e.SiteID, "error", err)
			continue
		}
	}

	logger.InfoContext(ctx, "indexing completed",
		"indexed", total.EntitiesIndexed,
		"skipped", total.EntitiesSkipped,
		"errors", total.EntitiesFailed,
		"rows", total.RowsWritten,
	)

	if total.EntitiesFailed > 0 {
		return total, fmt.Errorf("indexing completed with %d errors", total.EntitiesFailed)
	}
	return total, nil
}

// RemoveEntity deletes every keyword row of an entity, on all sites.
func (i *Indexer) RemoveEntity(ctx context.Context, entityID int64) error {
	if err := i.store.DeleteEntity(ctx, entityID); err != nil {
		return fmt.Errorf("failed to remove entity %d from index: %w", entityID, err)
	}
	return nil
}

// RemoveField deletes every keyword row of a custom field.
func (i *Indexer) RemoveField(ctx context.Context, fieldID int64) error {
	if err := i.store.DeleteField(ctx, fieldID); err != nil {
		return fmt.Errorf("failed to remove field %d from index: %w", fieldID, err)
	}
	return nil
}

// Keywords returns the stored keyword rows of an entity on a site. It returns storage.ErrNotFound when the
// entity has none.
func (i *Indexer) Keywords(ctx context.Context, entityID, siteID int64) ([]storage.IndexRow, error) {
	rows, err := i.store.ListByEntity(ctx, entityID, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords of entity %d: %w", entityID, err)
	}
	return rows, nil
}

func (i *Indexer) index(ctx context.Context, e Entity, skipFieldIDs []int64) (Stats, error) {
	logger := contextutil.LoggerFromContext(ctx).With("entity_id", e.ID, "site_id", e.SiteID)
	var stats Stats

	key := lock.Key(e.ID, e.SiteID)
	locked, err := i.locker.TryAcquire(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "index lock unavailable, skipping", "key", key, "error", err)
	}
	if !locked {
		logger.DebugContext(ctx, "entity is being indexed elsewhere, skipping", "key", key)
		metrics.IndexLockSkippedTotal.Inc()
		stats.EntitiesSkipped++
		return stats, nil
	}
	defer func() {
		if err := i.locker.Release(ctx, key); err != nil {
			logger.WarnContext(ctx, "failed to release index lock", "key", key, "error", err)
		}
	}()

	if err := i.store.DeleteForEntity(ctx, e.ID, e.SiteID, skipFieldIDs); err != nil {
		return stats, fmt.Errorf("failed to delete old keywords: %w", err)
	}

	attrs := make(map[string]string, len(e.Attributes)+2)
	for name, text := range e.Attributes {
		attrs[strings.ToLower(name)] = text
	}
	attrs[AttrSlug] = e.Slug
	if e.HasTitles {
		attrs[AttrTitle] = e.Title
	} else {
		delete(attrs, AttrTitle)
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := i.writeRow(ctx, logger, &e, name, 0, attrs[name], &stats); err != nil {
			return stats, err
		}
	}

	skip := make(map[int64]struct{}, len(skipFieldIDs))
	for _, id := range skipFieldIDs {
		skip[id] = struct{}{}
	}

	for _, f := range e.Fields {
		if _, ok := skip[f.FieldID]; ok {
			continue
		}
		extractor := f.Extractor
		if extractor == nil {
			extractor = PlainText
		}
		raw := extractor.SearchKeywords(f.Value, &e)
		if err := i.writeRow(ctx, logger, &e, dialect.FieldAttribute, f.FieldID, raw, &stats); err != nil {
			return stats, err
		}
	}

	stats.EntitiesIndexed++
	logger.InfoContext(ctx, "indexed entity", "rows", stats.RowsWritten, "canceled", stats.RowsCanceled)
	return stats, nil
}

func (i *Indexer) writeRow(ctx context.Context, logger *slog.Logger, e *Entity, attribute string, fieldID int64, raw string, stats *Stats) error {
	raw, keep := i.observer.BeforeIndex(ctx, IndexEvent{
		EntityID:  e.ID,
		SiteID:    e.SiteID,
		Attribute: attribute,
		FieldID:   fieldID,
		Keywords:  raw,
	})
	if !keep {
		logger.DebugContext(ctx, "keywords canceled by observer", "attribute", attribute, "field_id", fieldID)
		metrics.IndexRowsCanceledTotal.Inc()
		stats.RowsCanceled++
		return nil
	}

	clean := i.normalizer.Normalize(raw, e.Language)
	if len(clean) > i.limit {
		clean = keywords.Truncate(clean, i.limit)
		metrics.IndexTruncatedTotal.Inc()
		stats.RowsTruncated++
	}

	row := &storage.IndexRow{
		EntityID:  e.ID,
		SiteID:    e.SiteID,
		Attribute: attribute,
		FieldID:   fieldID,
		Keywords:  keywords.Pad(clean),
	}
	if err := i.store.Upsert(ctx, row); err != nil {
		return fmt.Errorf("failed to write keywords for %s: %w", attribute, err)
	}

	kind := "attribute"
	if fieldID != 0 {
		kind = "field"
	}
	metrics.IndexRowsWrittenTotal.WithLabelValues(kind).Inc()
	stats.RowsWritten++
	return nil
}
