package nfa

import (
	"github.com/coregx/coregex"
	"github.com/coregx/treexpr/internal/litfilter"
)

// ContentRestriction wraps a single compiled flat regex used to restrict a
// node's content or an attribute's value, plus an optional literal
// prefilter that lets most non-matching nodes skip the full regex engine
// entirely.
type ContentRestriction struct {
	re     *coregex.Regex
	filter *litfilter.Filter
}

// CompileContentRestriction compiles pattern (already extended-regex) into
// a ContentRestriction, folding it case-insensitive per spec §1/§4.2 (the
// original's REG_EXTENDED | REG_ICASE). coregex uses RE2 syntax, where case
// folding is requested with a "(?i)" flag prefix rather than a compile-time
// option. For an invalid pattern, returns a *CompileError wrapping
// coregex.Compile's error, reported against the pattern text the caller
// wrote (not the "(?i)"-prefixed form actually compiled).
func CompileContentRestriction(pattern string) (*ContentRestriction, error) {
	re, err := coregex.Compile("(?i)" + pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	filter, _ := litfilter.Build(pattern)
	return &ContentRestriction{re: re, filter: filter}, nil
}

// Matches reports whether text satisfies the restriction.
func (c *ContentRestriction) Matches(text string) bool {
	if c.filter != nil && !c.filter.IsMatch([]byte(text)) {
		return false
	}
	return c.re.MatchString(text)
}

// Submatch returns the [start,end) byte offsets of the whole match followed
// by those of group-capturing subexpressions 1..NumSubexp, following the
// FindStringSubmatchIndex convention: pairs of ints, -1 for an unmatched
// optional group. Returns nil if text does not match at all.
func (c *ContentRestriction) Submatch(text string) []int {
	if c.filter != nil && !c.filter.IsMatch([]byte(text)) {
		return nil
	}
	return c.re.FindStringSubmatchIndex(text)
}

// NumSubexp returns the number of capturing groups in the compiled
// pattern, not counting the whole-match group 0.
func (c *ContentRestriction) NumSubexp() int {
	return c.re.NumSubexp()
}
