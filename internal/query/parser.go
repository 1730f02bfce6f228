package query

import (
	"strings"
	"unicode"
)

const orKeyword = "OR"

// Parse splits q into top-level terms and OR groups. Parsing never fails: unbalanced quotes run to the end
// of the query and stray operators are dropped.
func Parse(q string, opts Options) *Query {
	query := &Query{Raw: q}

	var items [][]Term
	tokens := tokenize(q)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == orKeyword {
			// "a OR b" extends the previous item into a group; a leading or trailing OR is dropped.
			if len(items) > 0 && i+1 < len(tokens) && tokens[i+1] != orKeyword {
				i++
				last := len(items) - 1
				items[last] = append(items[last], parseTerm(tokens[i], opts))
			}
			continue
		}
		items = append(items, []Term{parseTerm(tok, opts)})
	}

	for _, item := range items {
		if len(item) == 1 {
			query.Terms = append(query.Terms, item[0])
		} else {
			query.Groups = append(query.Groups, TermGroup{Terms: item})
		}
	}

	return query
}

// tokenize splits on whitespace outside double quotes. Quotes stay in the token.
func tokenize(q string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range q {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case unicode.IsSpace(r) && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

func parseTerm(tok string, opts Options) Term {
	term := Term{SubLeft: opts.SubLeft, SubRight: opts.SubRight}

	if len(tok) > 1 && tok[0] == '-' {
		term.Exclude = true
		tok = tok[1:]
	}

	if i := strings.IndexByte(tok, ':'); i > 0 && isAttributeName(tok[:i]) {
		term.Attribute = strings.ToLower(tok[:i])
		tok = tok[i+1:]
		if strings.HasPrefix(tok, ":") {
			term.Exact = true
			tok = tok[1:]
		}
	}

	if tok == "*" {
		term.SubLeft = true
		term.SubRight = true
		return term
	}

	explicitLeft := strings.HasPrefix(tok, "*")
	if explicitLeft {
		tok = tok[1:]
	}
	explicitRight := strings.HasSuffix(tok, "*")
	if explicitRight {
		tok = tok[:len(tok)-1]
	}

	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		tok = tok[1 : len(tok)-1]
		term.Phrase = true
		term.SubLeft = false
		term.SubRight = false
	} else if strings.HasPrefix(tok, `"`) {
		// Unterminated quote
		tok = strings.TrimPrefix(tok, `"`)
		term.Phrase = true
		term.SubLeft = false
		term.SubRight = false
	}

	if term.Exact {
		term.SubLeft = false
		term.SubRight = false
	} else {
		term.SubLeft = term.SubLeft || explicitLeft
		term.SubRight = term.SubRight || explicitRight
	}

	term.Term = tok
	return term
}

func isAttributeName(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return s != ""
}
