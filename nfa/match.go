package nfa

// Match is one successful pattern match against a document node: the node
// itself, plus every capture the pattern staged while matching it.
type Match struct {
	Node     Node
	captures *CaptureSet
}

// NewMatch builds a Match from a matched node and the CaptureSet produced
// by Machine.Accepts. Used by package match.
func NewMatch(node Node, captures *CaptureSet) *Match {
	return &Match{Node: node, captures: captures}
}

// Group returns the text captured by the given 1-based slot, and whether
// it was ever written during the match.
func (m *Match) Group(slot CaptureSlot) (string, bool) {
	if m.captures == nil {
		return "", false
	}
	return m.captures.Get(slot)
}

// Groups returns every capture slot 1..RESUBR, "" for slots never written.
func (m *Match) Groups() []string {
	if m.captures == nil {
		return make([]string, RESUBR)
	}
	return m.captures.Groups()
}

// RegexMatch is the result of matching one embedded flat regex (a content
// or attribute-value restriction) against a single string, independent of
// any tree node. It is the unit RenderTemplate consumes for back-reference
// rendering.
type RegexMatch struct {
	// Whole is the entire matched substring (group 0).
	Whole string
	// Groups holds each numbered subexpression's matched text, "" for a
	// subexpression that did not participate in the match.
	Groups []string
}

// NewRegexMatch builds a RegexMatch from a FindStringSubmatchIndex-style
// offset slice and the string it was matched against.
func NewRegexMatch(text string, submatch []int) *RegexMatch {
	if submatch == nil {
		return nil
	}
	rm := &RegexMatch{
		Whole:  text[submatch[0]:submatch[1]],
		Groups: make([]string, len(submatch)/2-1),
	}
	for g := 1; g < len(submatch)/2; g++ {
		lo, hi := submatch[2*g], submatch[2*g+1]
		if hi == -1 {
			continue
		}
		rm.Groups[g-1] = text[lo:hi]
	}
	return rm
}
