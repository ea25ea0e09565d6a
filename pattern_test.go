package treexpr_test

import (
	"errors"
	"testing"

	"github.com/coregx/treexpr"
	"github.com/coregx/treexpr/nfa"
	"github.com/coregx/treexpr/tree"
)

// S1: a bare tag-name pattern matches the element it names, with no
// captures, and is indifferent to the element's children.
func TestScenarioS1(t *testing.T) {
	pat := treexpr.MustCompile("html")
	doc := tree.NewElement("html").WithChildren(tree.NewElement("body"))

	matches := pat.FindAll(doc)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Node != doc {
		t.Fatal("expected the match to be rooted at the html node")
	}
	for _, g := range matches[0].Groups() {
		if g != "" {
			t.Fatalf("expected no captures, got %v", matches[0].Groups())
		}
	}
}

// S2: a nested "-> (head -> title) body" restriction matches when the
// document's child order and structure line up exactly.
func TestScenarioS2(t *testing.T) {
	pat := treexpr.MustCompile(`html -> (head -> title) body`)
	doc := tree.NewElement("html").WithChildren(
		tree.NewElement("head").WithChildren(tree.NewElement("title")),
		tree.NewElement("body"),
	)

	matches := pat.FindAll(doc)
	count := 0
	for _, m := range matches {
		if m.Node == doc {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one match at the html node, got %d (total matches %d)", count, len(matches))
	}
}

// S3: the same shape with children out of order must not match, since
// concatenation is order-sensitive.
func TestScenarioS3(t *testing.T) {
	pat := treexpr.MustCompile(`html -> body head`)
	doc := tree.NewElement("html").WithChildren(
		tree.NewElement("head"),
		tree.NewElement("body"),
	)

	for _, m := range pat.FindAll(doc) {
		if m.Node == doc {
			t.Fatal("expected no match at html: children are in the wrong order")
		}
	}
}

// S4: a content restriction with no parenthesized subgroups captures its
// own whole match.
func TestScenarioS4(t *testing.T) {
	pat := treexpr.MustCompile(`p -> text:"ab*c"`)
	text := &tree.GenericNode{TagName: "text", HasTagName: true, Text: "abbbbbc", HasText: true}
	doc := tree.NewElement("p").WithChildren(text)

	matches := pat.FindAll(doc)
	var groups []string
	found := false
	for _, m := range matches {
		if m.Node == doc {
			groups = m.Groups()
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a match rooted at p, matches: %d", len(matches))
	}
	if groups[0] != "abbbbbc" {
		t.Fatalf("expected whole-match capture %q, got %v", "abbbbbc", groups)
	}
}

// S5: an attribute-value restriction with no subgroups captures the whole
// attribute value.
func TestScenarioS5(t *testing.T) {
	pat := treexpr.MustCompile(`table <bgcolor="blue">`)
	doc := tree.NewElement("table").WithAttr("bgcolor", "blue").WithAttr("border", "1")

	matches := pat.FindAll(doc)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if got := matches[0].Groups()[0]; got != "blue" {
		t.Fatalf("expected capture %q, got %q", "blue", got)
	}
}

// S6: four attribute-value restrictions, each with its own single
// subgroup, capture in document order regardless of the literal
// "text:\".\"" separators interleaved between them.
func TestScenarioS6(t *testing.T) {
	pat := treexpr.MustCompile(
		`form -> input<value="([0-9]+)"> text:"." input<value="([0-9]+)"> text:"." input<value="([0-9]+)"> text:"." input<value="([0-9]+)"> input`,
	)
	dot := func() *tree.GenericNode {
		return &tree.GenericNode{TagName: "text", HasTagName: true, Text: ".", HasText: true}
	}
	doc := tree.NewElement("form").WithChildren(
		tree.NewElement("input").WithAttr("value", "192"),
		dot(),
		tree.NewElement("input").WithAttr("value", "168"),
		dot(),
		tree.NewElement("input").WithAttr("value", "1"),
		dot(),
		tree.NewElement("input").WithAttr("value", "42"),
		tree.NewElement("input").WithAttr("type", "submit"),
	)

	matches := pat.FindAll(doc)
	var root []string
	for _, m := range matches {
		if m.Node == doc {
			root = m.Groups()
		}
	}
	if root == nil {
		t.Fatalf("expected a match rooted at form, matches: %d", len(matches))
	}
	want := []string{"192", "168", "1", "42"}
	for i, v := range want {
		if root[i] != v {
			t.Fatalf("expected captures %v in document order, got %v", want, root[:len(want)])
		}
	}
}

// Testable property 7: a presence-only attribute restriction matches a
// value-less attribute but rejects the same attribute carrying a value; a
// value-pattern restriction matches either form as long as the value
// satisfies the pattern.
func TestPropertyAttributeValuelessVsValuePresent(t *testing.T) {
	presenceOnly := treexpr.MustCompile(`foo <bar>`)
	valueless := tree.NewElement("foo")
	valueless.NodeAttrs = append(valueless.NodeAttrs, nfa.Attr{Name: "bar"})
	if !presenceOnly.Match(valueless) {
		t.Fatal("expected foo<bar> to accept a value-less bar attribute")
	}

	withValue := tree.NewElement("foo").WithAttr("bar", "x")
	if presenceOnly.Match(withValue) {
		t.Fatal("expected foo<bar> to reject bar=\"x\"")
	}

	anyValue := treexpr.MustCompile(`foo <bar=".*">`)
	if !anyValue.Match(valueless) {
		t.Fatal(`expected foo<bar=".*"> to reject a value-less bar attribute`)
	}
	if !anyValue.Match(withValue) {
		t.Fatal(`expected foo<bar=".*"> to accept bar="x"`)
	}
}

// Testable property 8: a failed second attribute makes the whole attribute
// restriction fail even though the first one matched. (That no partial
// capture is staged is checked in package nfa, where a failed match's
// captures are visible.)
func TestPropertyTwoPassAttributeSafety(t *testing.T) {
	pat := treexpr.MustCompile(`foo <a="x" b="y">`)
	node := tree.NewElement("foo").WithAttr("a", "xx").WithAttr("b", "zz")
	if pat.Match(node) {
		t.Fatal("expected no match when only one attribute value partially overlaps the pattern")
	}
}

// Testable property 9: running the same machine twice yields identical
// results.
func TestPropertyIdempotentRecompilationOfE(t *testing.T) {
	pat := treexpr.MustCompile(`p:"(\w+)"`)
	node := &tree.GenericNode{TagName: "p", HasTagName: true, Text: "hello", HasText: true}

	first := pat.FindAll(node)
	second := pat.FindAll(node)
	if len(first) != len(second) {
		t.Fatalf("expected identical match counts across runs, got %d and %d", len(first), len(second))
	}
	for i := range first {
		g1, g2 := first[i].Groups(), second[i].Groups()
		for k := range g1 {
			if g1[k] != g2[k] {
				t.Fatalf("expected identical captures across runs, got %v and %v", g1, g2)
			}
		}
	}
}

// A pattern that registers more capture groups than Config.MaxCaptureGroups
// allows is rejected at compile time rather than silently truncated.
func TestCompileWithConfigRejectsPatternOverCaptureLimit(t *testing.T) {
	config := treexpr.DefaultConfig()
	config.MaxCaptureGroups = 2

	_, err := treexpr.CompileWithConfig(`p:"(a)(b)(c)"`, config)
	if err == nil {
		t.Fatal("expected a pattern with 3 groups to be rejected under a limit of 2")
	}
	if !errors.Is(err, nfa.ErrTooManyCaptures) {
		t.Fatalf("expected errors.Is(err, nfa.ErrTooManyCaptures), got %v", err)
	}
}
