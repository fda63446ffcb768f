package choice

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// MatchMode selects the type-ahead matching strategy.
type MatchMode int

const (
	// MatchModePrefix matches the lower-cased display text prefix.
	// This is the default.
	MatchModePrefix MatchMode = iota
	// MatchModeFuzzy ranks selectable entries with fuzzy matching and
	// returns the best scoring one.
	MatchModeFuzzy
)

// Match returns the index of the best matching selectable entry for the
// typed term under the given mode, or -1 when the term is empty or
// nothing matches. Callers leave the active index untouched on -1.
func Match(choices []Choice, term string, mode MatchMode) int {
	if term == "" {
		return -1
	}
	if mode == MatchModeFuzzy {
		return matchFuzzy(choices, term)
	}
	return MatchPrefix(choices, term)
}

// MatchPrefix returns the index of the first selectable entry whose
// display text starts with term, compared lower-cased. Returns -1 when
// the term is empty or no entry matches.
func MatchPrefix(choices []Choice, term string) int {
	if term == "" {
		return -1
	}
	needle := strings.ToLower(term)
	for i, c := range choices {
		if !c.Selectable() {
			continue
		}
		if strings.HasPrefix(strings.ToLower(c.Text()), needle) {
			return i
		}
	}
	return -1
}

func matchFuzzy(choices []Choice, term string) int {
	texts := make([]string, 0, len(choices))
	indices := make([]int, 0, len(choices))
	for i, c := range choices {
		if !c.Selectable() {
			continue
		}
		texts = append(texts, c.Text())
		indices = append(indices, i)
	}
	matches := fuzzy.Find(term, texts)
	if len(matches) == 0 {
		return -1
	}
	return indices[matches[0].Index]
}
