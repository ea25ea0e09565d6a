package nfa

import "testing"

func TestCaptureSetGroupsSkipsUnmatchedOptionalGroup(t *testing.T) {
	cs := newCaptureSet()
	text := "2024-01-15"
	// hand-built submatch: whole, group1, group2 (did not participate), group3
	submatch := []int{0, 10, 0, 4, -1, -1, 8, 10}
	cs.setGroups(1, 3, submatch, text)

	if got, ok := cs.Get(1); !ok || got != "2024" {
		t.Fatalf("group 1: got %q, ok=%v", got, ok)
	}
	if _, ok := cs.Get(2); ok {
		t.Fatal("group 2 did not participate and must not be set")
	}
	if got, ok := cs.Get(3); !ok || got != "15" {
		t.Fatalf("group 3: got %q, ok=%v", got, ok)
	}
}

func TestCaptureSetGroupsHonorsBase(t *testing.T) {
	cs := newCaptureSet()
	text := "ab"
	submatch := []int{0, 2, 0, 1, 1, 2}
	cs.setGroups(5, 2, submatch, text)

	if got, ok := cs.Get(5); !ok || got != "a" {
		t.Fatalf("slot 5: got %q, ok=%v", got, ok)
	}
	if got, ok := cs.Get(6); !ok || got != "b" {
		t.Fatalf("slot 6: got %q, ok=%v", got, ok)
	}
}

func TestCaptureSetAbsorbMerges(t *testing.T) {
	parent := newCaptureSet()
	parent.set(1, "outer")
	child := newCaptureSet()
	child.set(2, "inner")

	parent.absorb(child)

	if got, _ := parent.Get(1); got != "outer" {
		t.Fatalf("expected parent capture preserved, got %q", got)
	}
	if got, _ := parent.Get(2); got != "inner" {
		t.Fatalf("expected child capture absorbed, got %q", got)
	}
}

func TestCaptureSetSetIgnoresSlotZero(t *testing.T) {
	cs := newCaptureSet()
	cs.set(0, "ignored")
	if _, ok := cs.Get(0); ok {
		t.Fatal("slot 0 means 'no capture' and must never be stored")
	}
}

func TestCaptureSetGroupsSliceOrder(t *testing.T) {
	cs := newCaptureSet()
	cs.set(1, "a")
	cs.set(3, "c")
	groups := cs.Groups()
	if len(groups) != RESUBR {
		t.Fatalf("expected %d groups, got %d", RESUBR, len(groups))
	}
	if groups[0] != "a" || groups[2] != "c" || groups[1] != "" {
		t.Fatalf("unexpected groups slice: %v", groups)
	}
}
