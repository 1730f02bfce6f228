// Package query parses free-text search queries into the term model compiled and scored by the search package.
//
// Syntax:
//
//	red car          two terms, both required
//	"red car"        one phrase term
//	-red             exclude
//	title:red        scope a term to an attribute or field handle
//	title::red car   exact match of the whole attribute value
//	*car, car*       explicit left/right wildcards
//	title:*          attribute has any value
//	red OR blue      a term group, any member may match
package query

// Term is one parsed atom of a search query.
type Term struct {
	// Term is the raw text. Empty with SubLeft means "any value".
	Term string
	// Attribute scopes the term to one attribute or field handle.
	Attribute string
	// Exact requires the whole keyword value to equal the term.
	Exact bool
	// SubLeft allows arbitrary content before the term.
	SubLeft bool
	// SubRight allows arbitrary content after the term.
	SubRight bool
	// Exclude negates the term.
	Exclude bool
	// Phrase marks quoted multi-word text that must match contiguously.
	Phrase bool
}

// AnyValue reports whether the term asks for any non-empty value.
func (t Term) AnyValue() bool {
	return t.Term == "" && t.SubLeft
}

// TermGroup is a list of terms combined with OR.
type TermGroup struct {
	Terms []Term
}

// Query is a parsed search query. Top-level terms are ANDed with each other and with every group.
type Query struct {
	Raw    string
	Terms  []Term
	Groups []TermGroup
}

// Empty reports whether the query has neither terms nor groups.
func (q *Query) Empty() bool {
	return len(q.Terms) == 0 && len(q.Groups) == 0
}

// Options are the default wildcard flags of unquoted, non-exact terms.
type Options struct {
	SubLeft  bool
	SubRight bool
}

// DefaultOptions matches prefixes: "car" finds "cars".
func DefaultOptions() Options {
	return Options{SubLeft: false, SubRight: true}
}
