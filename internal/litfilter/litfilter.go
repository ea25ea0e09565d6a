// Package litfilter extracts a literal-alternation prefilter from a content
// or attribute-value regex pattern.
//
// Many tree patterns restrict content or attribute values to a small set of
// alternative literal strings, e.g. "warning|error|fatal". Running the full
// embedded regex engine against every node's content just to reject most of
// them is wasted work once the tree gets large. When a pattern's top-level
// structure is exactly an alternation of plain literal strings (no
// metacharacters), litfilter builds an Aho-Corasick automaton over those
// literals and uses it as a safe, never-false-negative gate: IsMatch must
// return true before the caller bothers invoking the real regex. Patterns
// that don't reduce to a flat literal alternation report ok == false and
// the caller falls back to the regex engine unconditionally.
package litfilter

import (
	"bytes"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Filter is a literal-alternation prefilter gate for one compiled pattern.
type Filter struct {
	auto *ahocorasick.Automaton
}

// Build inspects pattern and, if its top level is a plain alternation of
// literal alternatives (no regex metacharacters in any branch), returns a
// Filter over those literals and ok == true. Otherwise returns ok == false.
//
// The regex these literals gate is always compiled case-insensitive (see
// nfa.CompileContentRestriction), so the automaton is built over lowercased
// literals and IsMatch lowercases its haystack to match: a case-folding
// prefilter is still a safe, never-false-negative gate, an exact-case one
// would not be.
func Build(pattern string) (f *Filter, ok bool) {
	lits, ok := literalAlternatives(pattern)
	if !ok || len(lits) == 0 {
		return nil, false
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern([]byte(strings.ToLower(lit)))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Filter{auto: auto}, true
}

// IsMatch reports whether haystack could possibly satisfy the full regex
// this filter was built from. false is a definitive rejection; true means
// the caller must still run the real regex to confirm.
func (f *Filter) IsMatch(haystack []byte) bool {
	return f.auto.IsMatch(bytes.ToLower(haystack))
}

// literalAlternatives splits pattern on top-level '|' and reports ok==true
// only if every branch contains no regex metacharacter, i.e. the whole
// pattern denotes a finite set of literal strings.
func literalAlternatives(pattern string) ([]string, bool) {
	if pattern == "" {
		return nil, false
	}
	branches := splitTopLevel(pattern)
	lits := make([]string, 0, len(branches))
	for _, b := range branches {
		if b == "" || hasMeta(b) {
			return nil, false
		}
		lits = append(lits, b)
	}
	return lits, true
}

// splitTopLevel splits on '|' that is not inside a (possibly nested) group
// and not escaped.
func splitTopLevel(pattern string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++ // skip escaped char
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				parts = append(parts, pattern[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, pattern[start:])
	return parts
}

const metaChars = `.^$*+?()[]{}\|`

func hasMeta(s string) bool {
	return strings.ContainsAny(s, metaChars)
}
