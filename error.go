package treexpr

import "github.com/coregx/treexpr/parser"

// ParseError reports a tree-pattern syntax error anchored to the byte
// offset in the original pattern text where parsing failed. It is a type
// alias for parser.ParseError so callers can use errors.As against either
// package's name.
type ParseError = parser.ParseError
