package nfa

import "github.com/coregx/treexpr/internal/conv"

// Frag is a Thompson-construction fragment: a start state and a single
// dangling final state, not yet wired to anything downstream. Builder's
// combinators consume Frags and produce new ones; Finish seals the last
// Frag into a runnable Machine.
type Frag struct {
	Start, Final StateID
}

// Builder accumulates the shared state arena for one compiled Machine.
// Every combinator call appends states to the same arena so that sibling
// fragments built earlier remain valid StateIDs into later ones.
type Builder struct {
	states []State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id})
	return id
}

func (b *Builder) state(id StateID) *State {
	return &b.states[id]
}

func (b *Builder) addEpsilon(from, to StateID) {
	s := b.state(from)
	s.eps = append(s.eps, to)
}

// Symbol creates a two-state fragment: start --tr--> final, where tr is
// filled in by the caller before the fragment is combined further. The
// caller owns tr and may attach Content/Attrs/Child/capture to it.
func (b *Builder) Symbol(tr *Trans) Frag {
	start := b.add()
	final := b.add()
	tr.Target = final
	b.state(start).tr = tr
	return Frag{Start: start, Final: final}
}

// Epsilon creates a fragment that matches nothing and consumes no node: a
// single epsilon edge from start to final. Used for the empty pattern
// ("~").
func (b *Builder) Epsilon() Frag {
	start := b.add()
	final := b.add()
	b.addEpsilon(start, final)
	return Frag{Start: start, Final: final}
}

// Concat sequences two fragments: a's final becomes epsilon-linked to b's
// start. The combined fragment matches a's sibling-list consumption
// followed immediately by b's.
func (b *Builder) Concat(a, c Frag) Frag {
	b.addEpsilon(a.Final, c.Start)
	return Frag{Start: a.Start, Final: c.Final}
}

// Alternate builds a fragment matching either a or b: a new start
// epsilon-branches to both sub-starts, and both sub-finals epsilon-join a
// new shared final.
func (b *Builder) Alternate(a, c Frag) Frag {
	start := b.add()
	final := b.add()
	b.addEpsilon(start, a.Start)
	b.addEpsilon(start, c.Start)
	b.addEpsilon(a.Final, final)
	b.addEpsilon(c.Final, final)
	return Frag{Start: start, Final: final}
}

// Closure builds a fragment matching zero or more repetitions of a
// (pattern "*"): a new start/final pair that can skip a entirely via
// epsilon, or enter a and loop back to try again.
func (b *Builder) Closure(a Frag) Frag {
	start := b.add()
	final := b.add()
	b.addEpsilon(start, a.Start)
	b.addEpsilon(start, final)
	b.addEpsilon(a.Final, a.Start)
	b.addEpsilon(a.Final, final)
	return Frag{Start: start, Final: final}
}

// Finish seals frag as the whole Machine: frag.Start becomes the machine's
// start state and frag.Final its unique accepting state.
func (b *Builder) Finish(frag Frag) *Machine {
	return NewMachine(frag.Start, frag.Final, b.states)
}
