package nfa

// CaptureSet accumulates the text captured by every numbered slot a
// pattern registers, across one call to Machine.Accepts (and, recursively,
// every nested child-machine's Accepts call triggered by a Trans's Child
// restriction).
//
// Each slot belongs to a single Trans or Attribute, so it is written at most
// once per simulation step. When a later step writes it again (a closure
// revisiting the same transition), the later write wins, and a write made
// by a branch that dies later is not undone: "last writer wins", with no
// further tie-break rule.
type CaptureSet struct {
	values map[CaptureSlot]string
}

func newCaptureSet() *CaptureSet {
	return &CaptureSet{values: make(map[CaptureSlot]string)}
}

// set stages text into slot, unconditionally overwriting any prior value.
func (cs *CaptureSet) set(slot CaptureSlot, text string) {
	if slot == 0 {
		return
	}
	cs.values[slot] = text
}

// setGroups stages the N subgroups of a submatch-index slice (the
// FindStringSubmatchIndex convention: pairs of byte offsets into text,
// starting after the whole-match pair) into slots base..base+numGroups-1,
// skipping any group whose End offset is -1 (the "this optional group did
// not participate" sentinel).
func (cs *CaptureSet) setGroups(base CaptureSlot, numGroups int, submatch []int, text string) {
	for g := 1; g <= numGroups; g++ {
		lo, hi := submatch[2*g], submatch[2*g+1]
		if hi == -1 {
			continue
		}
		cs.set(base+CaptureSlot(g-1), text[lo:hi])
	}
}

// absorb merges a nested child-machine's captures into cs. Per the capture
// ordering property, child-machine captures occupy their own slot range
// (assigned by the parser) disjoint from the parent's, so a plain map
// merge is order-independent.
func (cs *CaptureSet) absorb(child *CaptureSet) {
	for slot, text := range child.values {
		cs.values[slot] = text
	}
}

// Groups returns the captured text for slots 1..RESUBR, in slot order,
// using "" for any slot that was never written. Index 0 of the returned
// slice corresponds to CaptureSlot 1.
func (cs *CaptureSet) Groups() []string {
	out := make([]string, RESUBR)
	for slot, text := range cs.values {
		if slot >= 1 && int(slot) <= RESUBR {
			out[slot-1] = text
		}
	}
	return out
}

// Get returns the text captured by slot, and whether it was ever written.
func (cs *CaptureSet) Get(slot CaptureSlot) (string, bool) {
	text, ok := cs.values[slot]
	return text, ok
}
