package nlp

import (
	"sort"
	"strings"
)

// Dictionary maps a canonical skill name to its keyword variants.
type Dictionary map[string][]string

// Names returns the canonical skill names in alphabetical order.
func (d Dictionary) Names() []string {
	out := make([]string, 0, len(d))
	for name := range d {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Set returns every canonical skill name as a set.
func (d Dictionary) Set() SkillSet {
	out := make(SkillSet, len(d))
	for name := range d {
		out[name] = struct{}{}
	}
	return out
}

// MatchMode selects how a keyword is located inside normalized text.
type MatchMode string

const (
	// MatchSubstring is plain containment: "js" matches inside "jsonb".
	MatchSubstring MatchMode = "substring"
	// MatchWord requires the keyword to be delimited by spaces or text edges.
	MatchWord MatchMode = "word"
)

// ParseMatchMode maps a config value to a mode, defaulting to MatchSubstring.
func ParseMatchMode(s string) MatchMode {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case MatchWord:
		return MatchWord
	default:
		return MatchSubstring
	}
}

// ExtractSkills returns canonical names from dict whose keywords occur in the raw text.
// Keywords are normalized the same way as the text; a keyword that normalizes to ""
// never matches.
func ExtractSkills(dict Dictionary, raw string, mode MatchMode) SkillSet {
	text := NormalizeText(raw)
	found := make(SkillSet)
	for name, keywords := range dict {
		for _, kw := range keywords {
			if matchKeyword(text, NormalizeText(kw), mode) {
				found[name] = struct{}{}
				break
			}
		}
	}
	return found
}

func matchKeyword(text, kw string, mode MatchMode) bool {
	if kw == "" {
		return false
	}
	if mode == MatchWord {
		return ContainsPhrase(text, kw)
	}
	return strings.Contains(text, kw)
}

// SkillSet is an unordered set of canonical skill names.
type SkillSet map[string]struct{}

// NewSkillSet builds a set from names.
func NewSkillSet(names ...string) SkillSet {
	out := make(SkillSet, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

// Has reports membership.
func (s SkillSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Intersect returns the names present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for name := range s {
		if other.Has(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// Difference returns the names of s that are absent from other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for name := range s {
		if !other.Has(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// Sorted returns the names alphabetically; never nil.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
