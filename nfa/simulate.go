package nfa

import (
	"strings"

	"github.com/coregx/treexpr/internal/bitset"
	"github.com/coregx/treexpr/internal/conv"
)

// ensureClosureTable builds m.e on first use: e[s] is the set of states
// reachable from s via zero or more epsilon transitions, including s
// itself. Computed once by iterative fixpoint and cached on the Machine,
// since a Machine's states never change after Builder.Finish.
func (m *Machine) ensureClosureTable() {
	if m.e != nil {
		return
	}
	n := len(m.states)
	e := make([]*bitset.Set, n)
	for i := range e {
		e[i] = bitset.New(n)
	}
	for i := range m.states {
		closeOne(m, StateID(i), e[i])
	}
	m.e = e
	m.cur = bitset.New(n)
	m.next = bitset.New(n)
}

// closeOne computes the epsilon-closure of a single state into dst via
// depth-first traversal, guarding against cycles with dst itself (a state
// is never visited twice since dst.Test gates recursion).
func closeOne(m *Machine, s StateID, dst *bitset.Set) {
	i := conv.Uint32ToInt(uint32(s))
	if dst.Test(i) {
		return
	}
	dst.Set(i)
	for _, t := range m.states[s].eps {
		closeOne(m, t, dst)
	}
}

// Accepts runs the simulator over the sibling list beginning at first,
// per the document's Design Notes: on each step, advance every live state
// across its Trans against the current node (if the Trans's restrictions
// all hold), union in the epsilon-closure of every resulting target, then
// move to the next sibling. The pattern is accepted by the sibling list if
// the final state is live after consuming zero or more leading siblings
// (trailing siblings are never required to be consumed).
//
// Accepts is not reentrant on the same Machine: it reuses m.cur/m.next as
// scratch space.
func (m *Machine) Accepts(first Node) (bool, *CaptureSet) {
	m.ensureClosureTable()
	cs := newCaptureSet()

	cur := m.cur
	cur.Clear()
	cur.CopyFrom(m.e[m.start])

	finalIdx := conv.Uint32ToInt(uint32(m.final))
	if cur.Test(finalIdx) {
		return true, cs
	}

	for node := first; node != nil; node = node.NextSibling() {
		next := m.next
		next.Clear()

		cur.Each(func(i int) {
			tr := m.states[i].tr
			if tr == nil {
				return
			}
			if !matchTrans(tr, node, cs) {
				return
			}
			next.Union(m.e[tr.Target])
		})

		bitset.Swap(cur, next)
		m.cur, m.next = cur, next

		if cur.IsEmpty() {
			return false, cs
		}
		if cur.Test(finalIdx) {
			return true, cs
		}
	}

	return cur.Test(finalIdx), cs
}

// matchTrans tests node against a single transition's symbol kind and all
// attached restrictions, staging any captures the transition declares only
// once every restriction has been validated (two-pass commit, per the
// attribute-capture safety property).
func matchTrans(tr *Trans, node Node, cs *CaptureSet) bool {
	if tr.Kind == SymName {
		// Tag-name comparison is case-insensitive, per the reference
		// grammar's strcasecmp(tr->name, node->name).
		name, ok := node.Name()
		if !ok || !strings.EqualFold(name, tr.Name) {
			return false
		}
	}

	// A "-> Expr" child restriction composes with whatever name/wildcard
	// test already ran above: it narrows the same transition rather than
	// replacing the name check.
	var childCS *CaptureSet
	if tr.Child != nil {
		ok, ccs := tr.Child.Accepts(node.Children())
		if !ok {
			return false
		}
		childCS = ccs
	}

	contentText, hasContent := node.Content()
	var contentSubmatch []int
	if tr.Content != nil {
		if !hasContent {
			return false
		}
		contentSubmatch = tr.Content.Submatch(contentText)
		if contentSubmatch == nil {
			return false
		}
	}

	attrSubmatches, ok := validateAttrs(tr.Attrs, node.Attributes())
	if !ok {
		return false
	}

	// All restrictions passed: commit captures.
	if childCS != nil {
		cs.absorb(childCS)
	}
	if tr.capture != 0 {
		if hasContent {
			cs.set(tr.capture, contentText)
		} else if name, ok := node.Name(); ok {
			cs.set(tr.capture, name)
		}
	}
	if tr.Content != nil && tr.contentGroupBase != 0 {
		cs.setGroups(tr.contentGroupBase, tr.Content.NumSubexp(), contentSubmatch, contentText)
	}
	for i, attr := range tr.Attrs {
		if attr.capture != 0 {
			cs.set(attr.capture, attrSubmatches[i].value)
		}
		if attr.ValueRegex != nil && attr.valueGroupBase != 0 {
			cs.setGroups(attr.valueGroupBase, attr.ValueRegex.NumSubexp(), attrSubmatches[i].submatch, attrSubmatches[i].value)
		}
	}

	return true
}

// attrResult carries the matched value text (and, for regex-valued
// attributes, its submatch indices) through the validate pass so the
// commit pass never has to recompute anything.
type attrResult struct {
	value    string
	submatch []int
}

// validateAttrs checks that every restriction in attrs is satisfied by the
// first attribute of that name in have, WITHOUT mutating any capture
// state: this is pass one of the two-pass evaluation the capture-safety
// property requires, so that a restriction failing partway through never
// leaves stray captures behind.
func validateAttrs(attrs []*Attribute, have []Attr) ([]attrResult, bool) {
	if len(attrs) == 0 {
		return nil, true
	}
	results := make([]attrResult, len(attrs))
	for i, want := range attrs {
		// attrs_process decides on the first attribute carrying this
		// name and fails the whole restriction if that one doesn't
		// satisfy it, rather than searching further attributes of the
		// same name for one that does.
		a, ok := firstNamed(have, want.Name)
		if !ok {
			return nil, false
		}

		if !want.HasValuePattern {
			// A presence-only restriction names a boolean-style
			// attribute (e.g. <input disabled>): it matches only an
			// attribute carrying no value of its own, not one that
			// happens to also satisfy some value.
			if a.HasValue {
				return nil, false
			}
			results[i] = attrResult{value: a.Value}
			continue
		}

		if !a.HasValue {
			return nil, false
		}
		sm := want.ValueRegex.Submatch(a.Value)
		if sm == nil {
			return nil, false
		}
		results[i] = attrResult{value: a.Value, submatch: sm}
	}
	return results, true
}

// firstNamed returns the first attribute in have named name (compared
// case-insensitively, per attrs_process's strcasecmp), following
// attrs_process's linear-scan-and-commit evaluation.
func firstNamed(have []Attr, name string) (Attr, bool) {
	for _, a := range have {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Attr{}, false
}
