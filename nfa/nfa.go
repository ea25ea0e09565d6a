// Package nfa implements the tree-pattern NFA at the core of treexpr: the
// state/transition arena, Thompson-style construction, restriction
// evaluation, sibling-list simulation, and capture collection.
//
// A Machine is compiled once by package parser and then simulated any
// number of times against sibling node lists. Simulation lazily builds the
// Machine's epsilon-closure cache and reuses its scratch state sets, so a
// Machine must not be run concurrently on more than one tree at a time (see
// Machine.Accepts).
package nfa

import "github.com/coregx/treexpr/internal/bitset"

// StateID identifies a state within a Machine's owned state arena.
type StateID uint32

// State owns at most one Trans (its single non-epsilon outgoing edge) and
// any number of epsilon edges to other states owned by the same Machine.
type State struct {
	id  StateID
	tr  *Trans
	eps []StateID
}

// ID returns the state's index within its owning Machine.
func (s *State) ID() StateID { return s.id }

// Trans returns the state's outgoing symbol transition, or nil.
func (s *State) Trans() *Trans { return s.tr }

// Epsilons returns the state's epsilon targets.
func (s *State) Epsilons() []StateID { return s.eps }

// Node is the document-tree interface the simulator consumes. It mirrors
// the "external tree library" collaborator described by the specification:
// an HTML/XML node exposing its tag name, text content, attributes, first
// child, and next sibling. Package tree provides concrete implementations;
// nfa depends only on this structural interface so the engine core never
// imports a concrete tree/parsing library.
type Node interface {
	// Name returns the node's tag name and whether it has one (a name-less
	// node, if the tree library models such a thing, never matches a
	// non-wildcard symbol).
	Name() (string, bool)
	// Content returns the node's text content and whether it has any
	// (nodes with no content never satisfy a content-regex restriction).
	Content() (string, bool)
	// Attributes returns the node's attributes in document order.
	Attributes() []Attr
	// Children returns the first child of this node, or nil.
	Children() Node
	// NextSibling returns the next sibling in this node's list, or nil.
	NextSibling() Node
}

// Attr is one attribute carried by a Node, as consumed by attribute
// restriction evaluation.
type Attr struct {
	Name     string
	Value    string
	HasValue bool
}

// Machine is a compiled tree pattern: an NFA over symbol tokens, plus the
// caches that make repeated simulation cheap.
type Machine struct {
	start, final StateID
	states       []State

	// e is the epsilon-closure table, e[s] = set of states reachable from
	// s via zero or more epsilon transitions (including s itself). Built
	// lazily on first Accepts call and cached.
	e []*bitset.Set

	// cur and next are reused across Accepts invocations to avoid
	// reallocating a bitset per call. This is why a Machine is not safe
	// for concurrent simulation; see the package doc.
	cur, next *bitset.Set
}

// NewMachine wraps a finished Thompson fragment (built via Builder) into a
// runnable Machine. Used only by package parser and by Builder.Finish.
func NewMachine(start, final StateID, states []State) *Machine {
	return &Machine{start: start, final: final, states: states}
}

// Start returns the machine's start state.
func (m *Machine) Start() StateID { return m.start }

// Final returns the machine's (unique) accepting state.
func (m *Machine) Final() StateID { return m.final }

// States returns the number of states owned by this machine.
func (m *Machine) States() int { return len(m.states) }

// State returns the state with the given id.
func (m *Machine) State(id StateID) *State { return &m.states[id] }
