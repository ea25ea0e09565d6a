// Package treexpr implements a tree-pattern matching language for
// HTML-like document trees: a regular-expression-style grammar whose
// "characters" are tree nodes instead of bytes.
//
// A pattern restricts nodes by tag name, content, attributes, and
// children, and combines those restrictions with the usual regular
// expression operators: concatenation, alternation ("|"), and closure
// ("*"). Unlike a flat-text regex, a "-> subpattern" restriction lets a
// pattern descend into a node's children and apply an independent
// subpattern there, so a single expression can describe an arbitrarily
// deep tree shape.
//
// Basic usage:
//
//	pat, err := treexpr.Compile(`li<class="featured">`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := treexpr.ParseHTML(strings.NewReader(html))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range pat.FindAll(doc) {
//	    fmt.Println(m.Group(1))
//	}
//
// Pattern syntax:
//
//	.              any node
//	name           a node named "name"
//	~              the empty pattern (matches zero nodes)
//	a b            concatenation: a, then b
//	a|b            alternation: a, or b
//	a*             closure: zero or more a
//	(a b)*         grouping
//	a:"re"         a's content must match the extended regex "re"
//	a<k="re">      a must carry attribute k whose value matches "re"
//	a<k>           a must carry attribute k with no value
//	a -> b         a's children must be accepted by subpattern b
//
// Every ":" content restriction and "=" attribute-value restriction is an
// extended, case-insensitive regular expression compiled by
// github.com/coregx/coregex; their capturing groups are collected and
// exposed through Match.Group.
package treexpr
