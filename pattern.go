package treexpr

import (
	"io"

	"github.com/coregx/treexpr/match"
	"github.com/coregx/treexpr/nfa"
	"github.com/coregx/treexpr/parser"
	"github.com/coregx/treexpr/tree"
)

// Pattern is a compiled tree pattern, ready to run against any number of
// documents.
//
// A Pattern is not safe for concurrent use: matching reuses scratch state
// owned by the underlying NFA (see nfa.Machine). Compile a separate
// Pattern per goroutine, or serialize access with a mutex.
type Pattern struct {
	machine *nfa.Machine
	source  string
}

// Compile compiles pattern using DefaultConfig.
//
// Example:
//
//	pat, err := treexpr.Compile(`p:"error"`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time, such as
// a package-level var initializer.
func MustCompile(pattern string) *Pattern {
	pat, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return pat
}

// CompileWithConfig compiles pattern using an explicit Config.
func CompileWithConfig(pattern string, config Config) (*Pattern, error) {
	machine, err := parser.CompileWithOptions(pattern, config.RejectTrailingInput, config.MaxCaptureGroups)
	if err != nil {
		return nil, err
	}
	return &Pattern{machine: machine, source: pattern}, nil
}

// String returns the pattern's original source text.
func (p *Pattern) String() string {
	return p.source
}

// Match reports whether the sibling run beginning at root satisfies the
// pattern. Root's following siblings are not hidden from the machine (unlike
// FindAll, which tests each candidate node in isolation), so a multi-node
// pattern such as "a b" can match root together with its next sibling.
func (p *Pattern) Match(root nfa.Node) bool {
	ok, _ := p.machine.Accepts(root)
	return ok
}

// FindAll walks every node reachable from start (start, its siblings, and
// all of their descendants) and returns one *nfa.Match per node the
// pattern accepts.
func (p *Pattern) FindAll(start nfa.Node) []*nfa.Match {
	return match.FindAll(p.machine, start)
}

// ParseHTML parses r as an HTML document and returns the node treexpr
// patterns should be run against: the document's real top-level content,
// skipping any leading doctype declaration.
func ParseHTML(r io.Reader) (nfa.Node, error) {
	return tree.ParseDocument(r)
}

// ParseHTMLFragment parses htmlText as a standalone fragment (no
// enclosing <html>/<body>) and returns its first top-level node.
func ParseHTMLFragment(htmlText string) (nfa.Node, error) {
	return tree.ParseFragment(htmlText)
}
