package nfa

// SymbolKind distinguishes the two symbol tests a single tree-pattern factor
// can apply to a node, per the grammar's Factor production.
type SymbolKind int

const (
	// SymWild matches any node regardless of name ("." in pattern text).
	SymWild SymbolKind = iota
	// SymName matches a node whose tag name equals Name, compared
	// case-insensitively.
	SymName
)

// CaptureSlot names one of the up to RESUBR capture groups a Trans or
// Attribute may stage text into. Slot 0 is reserved for "no capture".
type CaptureSlot int

// RESUBR is the maximum number of capture groups a single pattern can
// register, inherited from the reference implementation's fixed-size
// submatch array.
const RESUBR = 10

// Trans is the single outgoing symbol transition a State may own. It
// carries everything needed to test one node against one pattern position:
// the symbol test itself, an optional content restriction, any number of
// attribute restrictions, and an optional child-machine restriction.
type Trans struct {
	Kind SymbolKind
	Name string // valid when Kind == SymName

	// Child, if non-nil, is the compiled subpattern node.Children() must be
	// accepted by (the "-> Expr" restriction). It composes with Kind's
	// name test rather than replacing it, so "html -> body" still requires
	// the node itself be named "html".
	Child *Machine

	// Content, if non-nil, restricts the matched node's text content to
	// nodes whose content matches this regex.
	Content *ContentRestriction

	// Attrs restricts the matched node's attribute set; all entries must
	// hold for the node to satisfy this transition.
	Attrs []*Attribute

	// Target is the state this transition leads to on success.
	Target StateID

	// capture, if non-zero, stages the matched node's Content() text (or,
	// lacking content, its Name()) into this numbered slot, per spec §4.7.
	capture CaptureSlot

	// contentGroupBase, if non-zero, is the overall capture slot assigned
	// to Content's local group 1; local group k maps to slot
	// contentGroupBase+k-1. Assigned by the parser when it allocates the
	// pattern's global capture numbering.
	contentGroupBase CaptureSlot
}

// SetCapture assigns the node-level capture slot this transition stages on
// a successful match. Used by package parser while building the Trans.
func (t *Trans) SetCapture(slot CaptureSlot) { t.capture = slot }

// SetContentGroupBase assigns the overall slot number for Content's local
// group 1 (subsequent local groups follow consecutively). Used by package
// parser after compiling Content and allocating its NumSubexp() slots.
func (t *Trans) SetContentGroupBase(slot CaptureSlot) { t.contentGroupBase = slot }

// Attribute is one attribute restriction attached to a Trans: the node must
// carry an attribute named Name; if HasValuePattern is set the attribute's
// value must additionally match ValueRegex.
type Attribute struct {
	Name string

	// HasValuePattern is true when the pattern specified a value to test
	// ("name=\"pattern\""), false when it only requires the attribute's
	// presence ("name"). When true, ValueRegex is always set: the
	// reference grammar has no plain-literal attribute value form, every
	// value restriction is an extended, case-insensitive regex.
	HasValuePattern bool

	// ValueRegex is the compiled value restriction. Set iff
	// HasValuePattern.
	ValueRegex *ContentRestriction

	// capture stages the attribute's value into this slot on a successful
	// match. Zero means "no capture".
	capture CaptureSlot

	// valueGroupBase, if non-zero, is the overall slot assigned to
	// ValueRegex's local group 1, analogous to Trans.contentGroupBase.
	valueGroupBase CaptureSlot
}

// SetCapture assigns the attribute-value capture slot. Used by the parser.
func (a *Attribute) SetCapture(slot CaptureSlot) { a.capture = slot }

// SetValueGroupBase assigns the overall slot number for ValueRegex's local
// group 1. Used by the parser.
func (a *Attribute) SetValueGroupBase(slot CaptureSlot) { a.valueGroupBase = slot }
