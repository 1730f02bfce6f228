package search

import (
	"math"
	"slices"
	"strings"

	"searchindex/internal/indexer"
	"searchindex/internal/keywords"
	"searchindex/internal/query"
	"searchindex/internal/storage"
)

// Score multipliers.
const (
	exactValueMultiplier = 100
	substringMultiplier  = 10
	wordMultiplier       = 50
	titleMultiplier      = 5
)

// Result is one matched entity and its relevance score.
type Result struct {
	EntityID int64 `json:"entity_id"`
	Score    int   `json:"score"`
}

// Results are ordered by descending score.
type Results []Result

// Map returns the scores keyed by entity ID.
func (r Results) Map() map[int64]int {
	m := make(map[int64]int, len(r))
	for _, res := range r {
		m[res.EntityID] = res.Score
	}
	return m
}

// IDs returns the entity IDs in result order.
func (r Results) IDs() []int64 {
	ids := make([]int64, len(r))
	for i, res := range r {
		ids[i] = res.EntityID
	}
	return ids
}

// Scorer ranks the rows returned by a compiled query.
type Scorer struct {
	normalizer *keywords.Normalizer
}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{normalizer: keywords.NewNormalizer()}
}

// Score sums the term scores of every row per entity and sorts entities by descending score.
// Entities with equal scores keep the order in which their first row appeared.
func (s *Scorer) Score(q *query.Query, rows []storage.IndexRow, lang string) Results {
	terms := s.weighted(q, lang)

	totals := make(map[int64]float64)
	var order []int64
	for _, row := range rows {
		if _, ok := totals[row.EntityID]; !ok {
			order = append(order, row.EntityID)
		}
		totals[row.EntityID] += s.scoreRow(terms, row)
	}

	results := make(Results, len(order))
	for i, id := range order {
		results[i] = Result{EntityID: id, Score: int(math.Round(totals[id]))}
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		return b.Score - a.Score
	})
	return results
}

type weightedTerm struct {
	term     query.Term
	keywords string
	weight   float64
}

// weighted normalizes every term once. Top-level terms weigh 1; a term in a group of n weighs 1/n.
func (s *Scorer) weighted(q *query.Query, lang string) []weightedTerm {
	if q == nil {
		return nil
	}
	var terms []weightedTerm
	for _, t := range q.Terms {
		terms = append(terms, weightedTerm{term: t, keywords: s.normalizer.Normalize(t.Term, lang), weight: 1})
	}
	for _, g := range q.Groups {
		w := 1 / float64(len(g.Terms))
		for _, t := range g.Terms {
			terms = append(terms, weightedTerm{term: t, keywords: s.normalizer.Normalize(t.Term, lang), weight: w})
		}
	}
	return terms
}

func (s *Scorer) scoreRow(terms []weightedTerm, row storage.IndexRow) float64 {
	var score float64
	for _, wt := range terms {
		score += scoreTerm(wt, row)
	}
	return score
}

// scoreTerm counts occurrences of the boundary-padded term in the row. Exact terms are pure filters and
// score nothing.
func scoreTerm(wt weightedTerm, row storage.IndexRow) float64 {
	if wt.term.Exact || wt.keywords == "" {
		return 0
	}

	needle := wt.keywords
	if !wt.term.SubLeft {
		needle = " " + needle
	}
	if !wt.term.SubRight {
		needle += " "
	}

	count := strings.Count(row.Keywords, needle)
	if count == 0 {
		return 0
	}
	words := keywords.WordCount(row.Keywords)
	if words == 0 {
		return 0
	}

	var multiplier float64
	switch {
	case strings.TrimSpace(needle) == strings.TrimSpace(row.Keywords):
		multiplier = exactValueMultiplier
	case wt.term.SubLeft || wt.term.SubRight:
		multiplier = substringMultiplier
	default:
		multiplier = wordMultiplier
	}
	if row.Attribute == indexer.AttrTitle {
		multiplier *= titleMultiplier
	}

	return float64(count) / float64(words) * multiplier * wt.weight
}
