// Package match implements the recursive tree descent that applies a
// compiled nfa.Machine to every node of a document, producing one
// nfa.Match per node the pattern accepts.
package match

import "github.com/coregx/treexpr/nfa"

// soloNode wraps a node to hide its real NextSibling, so the simulator
// sees it as the sole member of its sibling list. The document itself is
// never mutated; a temporary NextSibling-severing trick (as the reference
// implementation performs in place) would make matching unsafe to run
// concurrently over shared trees, so this package builds a throwaway view
// instead.
//
// Matching candidate start positions one at a time this way means a
// pattern that needs more than one sibling to satisfy (e.g. "a b") can
// only match when used as a "-> " child restriction against a node whose
// children are being searched as a full sibling run — see Children. A
// whole-document FindAll pass always considers each node of a level in
// isolation, exactly like the reference implementation's node-by-node
// walk.
type soloNode struct {
	nfa.Node
}

func (s soloNode) NextSibling() nfa.Node { return nil }

// FindAll walks every node reachable from start — first considering start
// and each of its siblings as an isolated candidate, then descending into
// each node's children — and returns one *nfa.Match per node the machine
// accepts.
func FindAll(m *nfa.Machine, start nfa.Node) []*nfa.Match {
	var matches []*nfa.Match
	for cur := start; cur != nil; cur = cur.NextSibling() {
		if ok, cs := m.Accepts(soloNode{cur}); ok {
			matches = append(matches, nfa.NewMatch(cur, cs))
		}
		matches = append(matches, FindAll(m, cur.Children())...)
	}
	return matches
}
