package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_entity_indexer.go -package=mocks searchindex/internal/service EntityIndexer
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_searcher.go -package=mocks searchindex/internal/service Searcher
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_index_service.go -package=mocks -mock_names=IndexService=MockIndexService searchindex/internal/service IndexService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"searchindex/internal/contextutil"
	"searchindex/internal/dialect"
	"searchindex/internal/indexer"
	"searchindex/internal/query"
	"searchindex/internal/search"
	"searchindex/internal/storage"
)

// maxQueryLength bounds the raw query string in bytes.
const maxQueryLength = 1024

// EntityIndexer writes and removes keyword rows.
// This interface is defined from the service layer's perspective (consumer-first).
type EntityIndexer interface {
	IndexKeywords(ctx context.Context, e indexer.Entity, skipFieldIDs []int64) error
	IndexAll(ctx context.Context, entities []indexer.Entity) (indexer.Stats, error)
	RemoveEntity(ctx context.Context, entityID int64) error
	RemoveField(ctx context.Context, fieldID int64) error
	Keywords(ctx context.Context, entityID, siteID int64) ([]storage.IndexRow, error)
}

// Searcher runs searches against the keyword index.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (search.Results, error)
}

// IndexRequest asks for one entity to be (re)indexed.
type IndexRequest struct {
	Entity       indexer.Entity
	SkipFieldIDs []int64
}

// SearchRequest is a search in the domain layer. Nil wildcard flags use the service defaults.
type SearchRequest struct {
	Query        string
	SiteIDs      []int64
	CandidateIDs []int64
	Language     string
	SubLeft      *bool
	SubRight     *bool
}

// SearchResponse holds the ranked results of a search.
type SearchResponse struct {
	Results search.Results
}

// IndexService provides indexing and search.
type IndexService interface {
	// IndexEntity validates and indexes one entity.
	IndexEntity(ctx context.Context, req IndexRequest) error
	// IndexBatch validates and indexes several entities, continuing past individual failures.
	IndexBatch(ctx context.Context, entities []indexer.Entity) (indexer.Stats, error)
	// RemoveEntity deletes every keyword row of an entity.
	RemoveEntity(ctx context.Context, entityID int64) error
	// RemoveField deletes every keyword row of a custom field, e.g. after the field was deleted.
	RemoveField(ctx context.Context, fieldID int64) error
	// EntityKeywords returns the stored keyword rows of an entity on a site.
	EntityKeywords(ctx context.Context, entityID, siteID int64) ([]storage.IndexRow, error)
	// Search validates and runs a search.
	Search(ctx context.Context, req SearchRequest) (SearchResponse, error)
}

// indexService implements IndexService.
type indexService struct {
	indexer  EntityIndexer
	searcher Searcher
	defaults query.Options
}

// NewIndexService creates a new IndexService.
func NewIndexService(idx EntityIndexer, searcher Searcher, defaults query.Options) IndexService {
	return &indexService{
		indexer:  idx,
		searcher: searcher,
		defaults: defaults,
	}
}

// IndexEntity validates and indexes one entity.
func (s *indexService) IndexEntity(ctx context.Context, req IndexRequest) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateEntity(req.Entity); err != nil {
		logger.WarnContext(ctx, "invalid index request", "entity_id", req.Entity.ID, "error", err)
		return err
	}
	if err := validateIDs("skip_field_ids", req.SkipFieldIDs); err != nil {
		return err
	}

	if err := s.indexer.IndexKeywords(ctx, req.Entity, req.SkipFieldIDs); err != nil {
		logger.ErrorContext(ctx, "failed to index entity", "entity_id", req.Entity.ID, "error", err)
		return WrapError(err, "failed to index entity")
	}

	logger.InfoContext(ctx, "entity indexed", "entity_id", req.Entity.ID, "site_id", req.Entity.SiteID)
	return nil
}

// IndexBatch validates every entity before indexing any of them.
func (s *indexService) IndexBatch(ctx context.Context, entities []indexer.Entity) (indexer.Stats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(entities) == 0 {
		return indexer.Stats{}, &ValidationError{Field: "entities", Message: "cannot be empty"}
	}
	for i, e := range entities {
		if err := validateEntity(e); err != nil {
			logger.WarnContext(ctx, "invalid batch index request", "index", i, "error", err)
			return indexer.Stats{}, WrapError(err, fmt.Sprintf("entities[%d]", i))
		}
	}

	stats, err := s.indexer.IndexAll(ctx, entities)
	if err != nil {
		return stats, WrapError(err, "failed to index entities")
	}
	return stats, nil
}

// RemoveEntity deletes every keyword row of an entity.
func (s *indexService) RemoveEntity(ctx context.Context, entityID int64) error {
	if entityID <= 0 {
		return &ValidationError{Field: "entity_id", Message: "must be positive"}
	}
	if err := s.indexer.RemoveEntity(ctx, entityID); err != nil {
		return WrapError(err, "failed to remove entity")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "entity removed from index", "entity_id", entityID)
	return nil
}

// RemoveField deletes every keyword row of a custom field.
func (s *indexService) RemoveField(ctx context.Context, fieldID int64) error {
	if fieldID <= 0 {
		return &ValidationError{Field: "field_id", Message: "must be positive"}
	}
	if err := s.indexer.RemoveField(ctx, fieldID); err != nil {
		return WrapError(err, "failed to remove field")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "field removed from index", "field_id", fieldID)
	return nil
}

// EntityKeywords returns the stored keyword rows of an entity on a site. It returns ErrNotFound when the
// entity has no rows there.
func (s *indexService) EntityKeywords(ctx context.Context, entityID, siteID int64) ([]storage.IndexRow, error) {
	if entityID <= 0 {
		return nil, &ValidationError{Field: "entity_id", Message: "must be positive"}
	}
	if siteID <= 0 {
		return nil, &ValidationError{Field: "site_id", Message: "must be positive"}
	}

	rows, err := s.indexer.Keywords(ctx, entityID, siteID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("entity %d on site %d: %w", entityID, siteID, ErrNotFound)
	}
	if err != nil {
		return nil, WrapError(err, "failed to list keywords")
	}
	return rows, nil
}

// Search validates and runs a search. An empty query is valid and finds nothing.
func (s *indexService) Search(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(req.Query) > maxQueryLength {
		logger.WarnContext(ctx, "search query too long", "length", len(req.Query))
		return SearchResponse{}, &ValidationError{
			Field:   "q",
			Message: fmt.Sprintf("cannot exceed %d bytes", maxQueryLength),
		}
	}
	if err := validateIDs("site_id", req.SiteIDs); err != nil {
		return SearchResponse{}, err
	}
	if err := validateIDs("candidate_id", req.CandidateIDs); err != nil {
		return SearchResponse{}, err
	}
	if err := validateLanguage("lang", req.Language); err != nil {
		return SearchResponse{}, err
	}

	opts := s.defaults
	if req.SubLeft != nil {
		opts.SubLeft = *req.SubLeft
	}
	if req.SubRight != nil {
		opts.SubRight = *req.SubRight
	}

	results, err := s.searcher.Search(ctx, search.Request{
		Query:        req.Query,
		SiteIDs:      req.SiteIDs,
		CandidateIDs: req.CandidateIDs,
		Language:     req.Language,
		Options:      &opts,
	})
	if err != nil {
		return SearchResponse{}, WrapError(err, "failed to search")
	}

	logger.DebugContext(ctx, "search request processed", slog.Int("results", len(results)))
	return SearchResponse{Results: results}, nil
}

func validateEntity(e indexer.Entity) error {
	if e.ID <= 0 {
		return &ValidationError{Field: "id", Message: "must be positive"}
	}
	if e.SiteID <= 0 {
		return &ValidationError{Field: "site_id", Message: "must be positive"}
	}
	if err := validateLanguage("language", e.Language); err != nil {
		return err
	}

	for name := range e.Attributes {
		if strings.EqualFold(strings.TrimSpace(name), dialect.FieldAttribute) {
			return &ValidationError{Field: "attributes", Message: fmt.Sprintf("%q is reserved for custom fields", name)}
		}
	}

	seen := make(map[int64]struct{}, len(e.Fields))
	for _, f := range e.Fields {
		if f.FieldID <= 0 {
			return &ValidationError{Field: "fields", Message: "field_id must be positive"}
		}
		if _, dup := seen[f.FieldID]; dup {
			return &ValidationError{Field: "fields", Message: fmt.Sprintf("duplicate field_id %d", f.FieldID)}
		}
		seen[f.FieldID] = struct{}{}
	}
	return nil
}

func validateIDs(field string, ids []int64) error {
	for _, id := range ids {
		if id <= 0 {
			return &ValidationError{Field: field, Message: "must be positive"}
		}
	}
	return nil
}

func validateLanguage(field, tag string) error {
	if tag == "" {
		return nil
	}
	if _, err := language.Parse(tag); err != nil {
		return &ValidationError{Field: field, Message: fmt.Sprintf("invalid language tag %q", tag)}
	}
	return nil
}
