package skills

import (
	"sort"
	"strings"
)

// Span is an alias occurrence found in a text. Start and End are byte offsets
// into the searched text; Alias is the lower-cased dictionary alias that matched.
type Span struct {
	Start int
	End   int
	Text  string
	Alias string
}

// PhraseMatcher finds whole-token, case-insensitive occurrences of a fixed set
// of phrases. Overlapping matches are resolved longest first, then leftmost.
type PhraseMatcher struct {
	root *trieNode
}

type trieNode struct {
	children map[string]*trieNode
	alias    string // set on nodes that complete a phrase
}

// NewPhraseMatcher builds a matcher over the given phrases
func NewPhraseMatcher(phrases []string) *PhraseMatcher {
	m := &PhraseMatcher{root: &trieNode{}}
	for _, phrase := range phrases {
		m.add(phrase)
	}
	return m
}

func (m *PhraseMatcher) add(phrase string) {
	keys := tokenKeys(phrase)
	if len(keys) == 0 {
		return
	}
	node := m.root
	for _, k := range keys {
		if node.children == nil {
			node.children = make(map[string]*trieNode)
		}
		next, ok := node.children[k]
		if !ok {
			next = &trieNode{}
			node.children[k] = next
		}
		node = next
	}
	node.alias = strings.ToLower(strings.TrimSpace(phrase))
}

type candidate struct {
	first, last int // token indexes, inclusive
	alias       string
}

// FindSpans returns the non-overlapping phrase matches in text, ordered by position
func (m *PhraseMatcher) FindSpans(text string) []Span {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	var candidates []candidate
	for i := range tokens {
		node := m.root
		for j := i; j < len(tokens); j++ {
			next, ok := node.children[strings.ToLower(tokens[j].text)]
			if !ok {
				break
			}
			node = next
			if node.alias != "" {
				candidates = append(candidates, candidate{first: i, last: j, alias: node.alias})
			}
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		la := candidates[a].last - candidates[a].first
		lb := candidates[b].last - candidates[b].first
		if la != lb {
			return la > lb
		}
		return candidates[a].first < candidates[b].first
	})

	taken := make([]bool, len(tokens))
	var kept []candidate
	for _, c := range candidates {
		free := true
		for k := c.first; k <= c.last; k++ {
			if taken[k] {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		for k := c.first; k <= c.last; k++ {
			taken[k] = true
		}
		kept = append(kept, c)
	}

	sort.Slice(kept, func(a, b int) bool { return kept[a].first < kept[b].first })

	spans := make([]Span, 0, len(kept))
	for _, c := range kept {
		start, end := tokens[c.first].start, tokens[c.last].end
		spans = append(spans, Span{Start: start, End: end, Text: text[start:end], Alias: c.alias})
	}
	return spans
}
