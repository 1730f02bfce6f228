package search

import (
	"context"

	"github.com/google/uuid"

	"searchindex/internal/query"
	"searchindex/internal/storage"
)

// SearchEvent carries the state of one search through its observer callbacks.
// Observers may replace fields to change what the next step sees.
type SearchEvent struct {
	// ID correlates the callbacks and log lines of one search.
	ID uuid.UUID
	// Request is the search request. BeforeSearch may rewrite it before parsing.
	Request Request
	// Query is the parsed query, set from BeforeScore on.
	Query *query.Query
	// Rows are the matched index rows, set from BeforeScore on. BeforeScore may filter them.
	Rows []storage.IndexRow
	// Results are the scored entities, set for AfterSearch. AfterSearch may override them.
	Results Results
}

// SearchObserver is notified around every search.
type SearchObserver interface {
	BeforeSearch(ctx context.Context, ev *SearchEvent)
	BeforeScore(ctx context.Context, ev *SearchEvent)
	AfterSearch(ctx context.Context, ev *SearchEvent)
}

// NopSearchObserver implements SearchObserver with no-ops. Embed it to implement only some callbacks.
type NopSearchObserver struct{}

func (NopSearchObserver) BeforeSearch(context.Context, *SearchEvent) {}
func (NopSearchObserver) BeforeScore(context.Context, *SearchEvent)  {}
func (NopSearchObserver) AfterSearch(context.Context, *SearchEvent)  {}
