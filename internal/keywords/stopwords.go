package keywords

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultStopWords is the InnoDB default full-text stop-word list.
var DefaultStopWords = []string{
	"a", "about", "an", "are", "as", "at", "be", "by", "com", "de", "en", "for", "from", "how", "i", "in",
	"is", "it", "la", "of", "on", "or", "that", "the", "this", "to", "was", "what", "when", "where", "who",
	"will", "with", "und", "www",
}

// StopWords decides whether a single normalized word can be handed to a full-text engine.
// It is built once and never mutated, so it is safe for concurrent use.
type StopWords struct {
	minLength int
	words     map[string]struct{}
}

// NewStopWords builds the stop-word set for the given minimum indexed word length.
// Words shorter than minLength are already rejected by length, so they are left out of the set.
func NewStopWords(words []string, minLength int) *StopWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < minLength {
			continue
		}
		set[w] = struct{}{}
	}
	return &StopWords{minLength: minLength, words: set}
}

// Eligible reports whether word is long enough and not a stop word.
func (s *StopWords) Eligible(word string) bool {
	if utf8.RuneCountInString(word) < s.minLength {
		return false
	}
	_, stop := s.words[word]
	return !stop
}

// Len returns the number of words in the set.
func (s *StopWords) Len() int {
	return len(s.words)
}

type stopWordsFile struct {
	StopWords []string `yaml:"stopwords"`
}

// LoadStopWords reads a YAML file of the form `stopwords: [a, b, ...]`.
func LoadStopWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop-word file %s: %w", path, err)
	}

	var f stopWordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse stop-word file %s: %w", path, err)
	}
	if len(f.StopWords) == 0 {
		return nil, fmt.Errorf("stop-word file %s has no stopwords", path)
	}

	return f.StopWords, nil
}
