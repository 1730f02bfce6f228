package search

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"searchindex/internal/contextutil"
	"searchindex/internal/dialect"
	"searchindex/internal/metrics"
	"searchindex/internal/query"
	"searchindex/internal/storage"
)

// Request is one search against the index.
type Request struct {
	// Query is the raw query string.
	Query string
	// SiteIDs restricts matches to these sites. Empty searches every site.
	SiteIDs []int64
	// CandidateIDs restricts matches to these entities, typically the result of the caller's other criteria.
	// Nil means unrestricted; an empty non-nil slice matches nothing.
	CandidateIDs []int64
	// Language is the BCP 47 tag used to normalize the query.
	Language string
	// Options overrides the service's default wildcard flags.
	Options *query.Options
}

// Service runs searches: parse, compile, fetch matched rows, score.
type Service struct {
	store    storage.IndexStore
	compiler *Compiler
	scorer   *Scorer
	dialect  string
	defaults query.Options
	observer SearchObserver
}

// Option configures a Service.
type Option func(*Service)

// WithSearchObserver sets the observer notified around every search.
func WithSearchObserver(o SearchObserver) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// WithDefaultOptions sets the wildcard flags used when a request has none.
func WithDefaultOptions(opts query.Options) Option {
	return func(s *Service) {
		s.defaults = opts
	}
}

// NewService creates a new search Service. fullText selects the native full-text code path when the dialect has one.
func NewService(store storage.IndexStore, d dialect.Dialect, fields FieldResolver, fullText bool, opts ...Option) *Service {
	s := &Service{
		store:    store,
		compiler: NewCompiler(d, fields, store, fullText),
		scorer:   NewScorer(),
		dialect:  d.Name(),
		defaults: query.DefaultOptions(),
		observer: NopSearchObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the entities matching req, ordered by descending score.
// A query that cannot match anything returns no results and no error.
func (s *Service) Search(ctx context.Context, req Request) (Results, error) {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.WithLabelValues(s.dialect).Observe(time.Since(start).Seconds())
	}()

	ev := &SearchEvent{ID: uuid.New(), Request: req}
	logger := contextutil.LoggerFromContext(ctx).With("search_id", ev.ID.String())

	s.observer.BeforeSearch(ctx, ev)
	req = ev.Request

	opts := s.defaults
	if req.Options != nil {
		opts = *req.Options
	}
	q := query.Parse(req.Query, opts)
	ev.Query = q

	logger.DebugContext(ctx, "parsed search query",
		"query", req.Query,
		"terms", len(q.Terms),
		"groups", len(q.Groups),
	)

	results, err := s.search(ctx, ev)
	if err != nil {
		metrics.SearchQueriesTotal.WithLabelValues(s.dialect, "error").Inc()
		logger.ErrorContext(ctx, "search failed", "query", req.Query, "error", err)
		return nil, err
	}

	ev.Results = results
	s.observer.AfterSearch(ctx, ev)

	outcome := "matched"
	if len(ev.Results) == 0 {
		outcome = "no_match"
	}
	metrics.SearchQueriesTotal.WithLabelValues(s.dialect, outcome).Inc()

	logger.InfoContext(ctx, "search completed",
		"query", req.Query,
		"rows", len(ev.Rows),
		"results", len(ev.Results),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if ev.Results == nil {
		return Results{}, nil
	}
	return ev.Results, nil
}

func (s *Service) search(ctx context.Context, ev *SearchEvent) (Results, error) {
	req := ev.Request
	if req.CandidateIDs != nil && len(req.CandidateIDs) == 0 {
		return Results{}, nil
	}

	filter, ok, err := s.compiler.Compile(ctx, ev.Query, req.SiteIDs, req.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to compile query: %w", err)
	}
	if !ok {
		return Results{}, nil
	}

	where := sq.And{filter}
	if len(req.SiteIDs) > 0 {
		where = append(where, sq.Eq{dialect.ColSiteID: req.SiteIDs})
	}
	if req.CandidateIDs != nil {
		where = append(where, sq.Eq{dialect.ColEntityID: req.CandidateIDs})
	}

	rows, err := s.store.Rows(ctx, where)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matched rows: %w", err)
	}
	ev.Rows = rows

	s.observer.BeforeScore(ctx, ev)

	return s.scorer.Score(ev.Query, ev.Rows, req.Language), nil
}
