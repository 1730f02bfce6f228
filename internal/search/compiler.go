package search

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"searchindex/internal/dialect"
	"searchindex/internal/keywords"
	"searchindex/internal/metrics"
	"searchindex/internal/query"
)

// Compiler turns a parsed query into a filter over the index table.
type Compiler struct {
	fullText   dialect.FullText // nil when the backend has none or it is disabled
	fields     FieldResolver
	ids        EntityIDSource
	normalizer *keywords.Normalizer
}

// NewCompiler creates a Compiler. The full-text code path is fixed here from the dialect and the
// enabled flag; it never changes per call.
func NewCompiler(d dialect.Dialect, fields FieldResolver, ids EntityIDSource, fullTextEnabled bool) *Compiler {
	c := &Compiler{
		fields:     fields,
		ids:        ids,
		normalizer: keywords.NewNormalizer(),
	}
	if fullTextEnabled {
		c.fullText = d.FullText()
	}
	if c.fields == nil {
		c.fields = StaticFieldResolver{}
	}
	return c
}

// Compile builds the filter for q restricted to siteIDs (empty = all sites).
// It returns false when no index row can match: an empty query, a query whose terms produce no usable
// predicate, or a required attribute-scoped term whose subquery finds no entity.
func (c *Compiler) Compile(ctx context.Context, q *query.Query, siteIDs []int64, lang string) (sq.Sqlizer, bool, error) {
	if q == nil || q.Empty() {
		return nil, false, nil
	}

	var where sq.And

	top, ok, err := c.clause(ctx, q.Terms, true, siteIDs, lang)
	if err != nil || !ok {
		return nil, false, err
	}
	if top != nil {
		where = append(where, top)
	}

	for _, g := range q.Groups {
		cond, ok, err := c.clause(ctx, g.Terms, false, siteIDs, lang)
		if err != nil || !ok {
			return nil, false, err
		}
		where = append(where, cond)
	}

	// Nothing usable: an empty query finds nothing rather than everything.
	if len(where) == 0 {
		return nil, false, nil
	}
	if len(where) == 1 {
		return where[0], true, nil
	}
	return where, true, nil
}

// clause combines terms with AND (inclusive) or OR. An inclusive clause with no usable term returns
// (nil, true); a group with no usable term can never match and returns false.
func (c *Compiler) clause(ctx context.Context, terms []query.Term, inclusive bool, siteIDs []int64, lang string) (sq.Sqlizer, bool, error) {
	var conds []sq.Sqlizer
	var fullText []dialect.FullTextTerm

	for _, t := range terms {
		compiled, err := c.term(ctx, t, siteIDs, lang)
		if err != nil {
			return nil, false, err
		}
		switch {
		case compiled.noMatch:
			if inclusive {
				return nil, false, nil
			}
		case compiled.fullText != nil:
			fullText = append(fullText, *compiled.fullText)
		case compiled.cond != nil:
			conds = append(conds, compiled.cond)
		}
	}

	if len(fullText) > 0 {
		conds = append(conds, c.fullText.Match(fullText, inclusive))
	}

	switch {
	case len(conds) == 0:
		return nil, inclusive, nil
	case len(conds) == 1:
		return conds[0], true, nil
	case inclusive:
		return sq.And(conds), true, nil
	default:
		return sq.Or(conds), true, nil
	}
}

// compiledTerm is the result of one term: a plain condition, a full-text term to be merged with the
// other unscoped full-text terms of its clause, nothing usable, or a guaranteed miss.
type compiledTerm struct {
	cond     sq.Sqlizer
	fullText *dialect.FullTextTerm
	noMatch  bool
}

func (c *Compiler) term(ctx context.Context, t query.Term, siteIDs []int64, lang string) (compiledTerm, error) {
	var text sq.Sqlizer
	var fullText *dialect.FullTextTerm

	kw := c.normalizer.Normalize(t.Term, lang)
	switch {
	case t.AnyValue():
		if t.Exclude {
			text = sq.Eq{dialect.ColKeywords: ""}
		} else {
			text = sq.NotEq{dialect.ColKeywords: ""}
		}
	case kw == "":
		// Nothing left after normalization, e.g. a query of "-".
		return compiledTerm{}, nil
	case c.fullTextEligible(t, kw):
		fullText = &dialect.FullTextTerm{
			Words:   strings.Fields(kw),
			Prefix:  t.SubRight,
			Exclude: t.Exclude,
			Pattern: likePattern(t, kw),
		}
	default:
		if t.Exclude {
			text = sq.NotLike{dialect.ColKeywords: likePattern(t, kw)}
		} else {
			text = sq.Like{dialect.ColKeywords: likePattern(t, kw)}
		}
	}

	if t.Attribute == "" {
		return compiledTerm{cond: text, fullText: fullText}, nil
	}

	scope, err := c.scope(ctx, t.Attribute)
	if err != nil {
		return compiledTerm{}, err
	}
	if fullText != nil {
		text = c.fullText.Match([]dialect.FullTextTerm{*fullText}, true)
	}

	sub := sq.And{scope, text}
	if len(siteIDs) > 0 {
		sub = append(sub, sq.Eq{dialect.ColSiteID: siteIDs})
	}

	ids, err := c.ids.EntityIDs(ctx, sub)
	if err != nil {
		return compiledTerm{}, fmt.Errorf("failed to query candidates for %s: %w", t.Attribute, err)
	}
	if len(ids) == 0 {
		metrics.SearchSubqueriesTotal.WithLabelValues("empty").Inc()
		return compiledTerm{noMatch: true}, nil
	}
	metrics.SearchSubqueriesTotal.WithLabelValues("ids").Inc()

	return compiledTerm{cond: sq.Eq{dialect.ColEntityID: ids}}, nil
}

// scope restricts rows to a custom field when the attribute names one, otherwise to the attribute itself.
func (c *Compiler) scope(ctx context.Context, attribute string) (sq.Sqlizer, error) {
	fieldIDs, err := c.fields.FieldIDs(ctx, attribute)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve field %s: %w", attribute, err)
	}
	if len(fieldIDs) > 0 {
		return sq.Eq{dialect.ColFieldID: fieldIDs}, nil
	}
	return sq.Eq{dialect.ColAttribute: strings.ToLower(attribute)}, nil
}

// fullTextEligible reports whether the normalized term can use the native full-text predicate.
func (c *Compiler) fullTextEligible(t query.Term, kw string) bool {
	if c.fullText == nil || kw == "" {
		return false
	}
	if t.SubLeft || t.Exact || t.Exclude {
		return false
	}
	words := strings.Fields(kw)
	if len(words) > 1 && !c.fullText.AllowsPhrases() {
		return false
	}
	for _, w := range words {
		if !c.fullText.WordEligible(w) {
			return false
		}
	}
	return true
}

// likePattern brackets the keywords for a LIKE match against boundary-padded index values.
// Exact terms must equal the whole value, so only an explicit wildcard adds "%".
func likePattern(t query.Term, kw string) string {
	if t.Exact {
		return wrap(t.SubLeft, "%", " ") + kw + wrap(t.SubRight, "%", " ")
	}
	return wrap(t.SubLeft, "%", "% ") + kw + wrap(t.SubRight, "%", " %")
}

func wrap(sub bool, open, padded string) string {
	if sub {
		return open
	}
	return padded
}
