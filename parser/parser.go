package parser

import (
	"fmt"

	"github.com/coregx/treexpr/nfa"
)

// ParseError reports a tree-pattern syntax error anchored to the byte
// offset in the original pattern text where parsing failed.
type ParseError struct {
	Message string
	Offset  int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("treexpr: %s (at offset %d)", e.Message, e.Offset)
}

// Parser compiles tree-pattern text into an *nfa.Machine via a
// recursive-descent grammar:
//
//	Expr   := Term ( '|' Term )*
//	Term   := Factor+
//	Factor := Symbol Suffix?
//	        | '~'
//	        | '(' Expr ')' '*'?
//	Suffix := '*' | '->' Expr | ':' STRING | Attrs ( '->' Expr )?
//	Attrs  := '<' ( SYMBOL ( '=' STRING )? )* '>'
//
// A single Parser instance owns the pattern's global capture-slot counter,
// shared across every nested "-> subpattern" Expr so that a child
// machine's captures never collide with its parent's.
type Parser struct {
	lex      *Lexer
	builder  *nfa.Builder
	nextSlot nfa.CaptureSlot
	sites    []captureSite
}

// captureSite records one compiled content/attribute-value restriction in
// the order its ":" or "=" token was encountered, deferring the decision
// of what it captures until the whole pattern (including every nested
// "-> subpattern") has been parsed.
type captureSite struct {
	restriction  *nfa.ContentRestriction
	setWhole     func(nfa.CaptureSlot)
	setGroupBase func(nfa.CaptureSlot)
}

// Compile parses pattern and returns its compiled Machine, or a
// *ParseError describing the first syntax error encountered. Any
// unconsumed text after a syntactically complete expression is rejected.
func Compile(pattern string) (*nfa.Machine, error) {
	return CompileWithTrailing(pattern, true)
}

// CompileWithTrailing parses pattern like Compile, but only rejects
// trailing unconsumed input when rejectTrailing is true.
func CompileWithTrailing(pattern string, rejectTrailing bool) (*nfa.Machine, error) {
	return CompileWithOptions(pattern, rejectTrailing, nfa.RESUBR)
}

// CompileWithOptions parses pattern like CompileWithTrailing, and further
// rejects the pattern if it (including every nested "-> subpattern")
// registers more than maxCaptures capture slots.
func CompileWithOptions(pattern string, rejectTrailing bool, maxCaptures int) (*nfa.Machine, error) {
	p := &Parser{lex: NewLexer(pattern), builder: nfa.NewBuilder()}
	frag, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if rejectTrailing {
		tok := p.lex.Next()
		if tok.Kind != EOL {
			return nil, &ParseError{Message: "unexpected trailing input", Offset: tok.Pos}
		}
	}
	p.finalizeCaptures()
	if int(p.nextSlot) > maxCaptures {
		return nil, &nfa.BuildError{
			Message: fmt.Sprintf("pattern registered %d capture groups, exceeding the limit of %d", p.nextSlot, maxCaptures),
			Err:     nfa.ErrTooManyCaptures,
		}
	}
	return p.builder.Finish(frag), nil
}

// finalizeCaptures decides, once for the whole pattern, whether a
// content/attribute-value restriction with no parenthesized subgroups
// captures its own whole match. That fallback only applies when NO
// restriction anywhere in the pattern (including nested "-> subpatterns")
// declared an explicit subgroup of its own: the moment one restriction
// writes "(...)", every restriction in the pattern is assumed to name its
// captures deliberately, and a plain restriction used only to narrow the
// match (e.g. a literal separator) captures nothing. This is what lets a
// pattern mix several grouped attribute-value restrictions with ungrouped
// literal content restrictions and get exactly one capture per grouped
// restriction, not one per restriction encountered.
func (p *Parser) finalizeCaptures() {
	anyGroups := false
	for _, s := range p.sites {
		if s.restriction.NumSubexp() > 0 {
			anyGroups = true
			break
		}
	}
	for _, s := range p.sites {
		if n := s.restriction.NumSubexp(); n > 0 {
			s.setGroupBase(p.allocGroups(n))
		} else if !anyGroups {
			s.setWhole(p.allocSlot())
		}
	}
}

func (p *Parser) allocSlot() nfa.CaptureSlot {
	p.nextSlot++
	return p.nextSlot
}

// recordCaptureSite defers a restriction's capture-slot assignment until
// finalizeCaptures runs over the whole pattern; see finalizeCaptures for
// the rule this implements.
func (p *Parser) recordCaptureSite(restriction *nfa.ContentRestriction, setWhole func(nfa.CaptureSlot), setGroupBase func(nfa.CaptureSlot)) {
	p.sites = append(p.sites, captureSite{restriction: restriction, setWhole: setWhole, setGroupBase: setGroupBase})
}

// allocGroups reserves n consecutive slots and returns the first one (the
// base a Trans/Attribute maps its local group 1 onto). Returns 0, meaning
// "no groups", when n == 0.
func (p *Parser) allocGroups(n int) nfa.CaptureSlot {
	if n == 0 {
		return 0
	}
	base := p.nextSlot + 1
	p.nextSlot += nfa.CaptureSlot(n)
	return base
}

// parseExpr parses an Expr: a Term, optionally followed by one or more
// "| Term" alternatives.
func (p *Parser) parseExpr() (nfa.Frag, error) {
	frag, err := p.parseTerm()
	if err != nil {
		return nfa.Frag{}, err
	}
	for {
		save := p.lex.Clone()
		tok := save.Next()
		if tok.Kind == ERROR {
			return nfa.Frag{}, &ParseError{Message: "tokenizing error", Offset: tok.Pos}
		}
		if tok.Kind != SPIKE {
			return frag, nil
		}
		p.lex = save
		next, err := p.parseTerm()
		if err != nil {
			return nfa.Frag{}, err
		}
		frag = p.builder.Alternate(frag, next)
	}
}

// parseTerm parses one or more concatenated Factors.
func (p *Parser) parseTerm() (nfa.Frag, error) {
	frag, err := p.parseFactor()
	if err != nil {
		return nfa.Frag{}, err
	}
	for {
		save := p.lex.Clone()
		tok := save.Next()
		if tok.Kind != SYMBOL && tok.Kind != WAX && tok.Kind != SQUIGGLE {
			return frag, nil
		}
		next, err := p.parseFactor()
		if err != nil {
			return nfa.Frag{}, err
		}
		frag = p.builder.Concat(frag, next)
	}
}

// parseFactor parses a single Factor: a symbol (with optional restriction
// and/or closure), the empty pattern "~", or a parenthesized
// sub-expression (with optional closure).
func (p *Parser) parseFactor() (nfa.Frag, error) {
	tok := p.lex.Next()
	switch tok.Kind {
	case ERROR:
		return nfa.Frag{}, &ParseError{Message: "tokenizing error", Offset: tok.Pos}

	case SQUIGGLE:
		return p.builder.Epsilon(), nil

	case SYMBOL:
		return p.parseSymbolFactor(tok)

	case WAX:
		frag, err := p.parseExpr()
		if err != nil {
			return nfa.Frag{}, err
		}
		closeTok := p.lex.Next()
		if closeTok.Kind == ERROR {
			return nfa.Frag{}, &ParseError{Message: "tokenizing error", Offset: closeTok.Pos}
		}
		if closeTok.Kind != WANE {
			return nfa.Frag{}, &ParseError{Message: "expected ')'", Offset: closeTok.Pos}
		}
		return p.maybeClosure(frag)

	default:
		return nfa.Frag{}, &ParseError{Message: "expected a symbol, '~', or '('", Offset: tok.Pos}
	}
}

// parseSymbolFactor parses the restrictions that may follow a bare symbol:
// at most one of "*", "-> Expr", ": STRING", or "< Attrs > (-> Expr)?".
func (p *Parser) parseSymbolFactor(sym Token) (nfa.Frag, error) {
	tr := &nfa.Trans{Kind: nfa.SymWild}
	if sym.Text != "." {
		tr.Kind = nfa.SymName
		tr.Name = sym.Text
	}

	save := p.lex.Clone()
	tok := save.Next()
	switch tok.Kind {
	case ERROR:
		return nfa.Frag{}, &ParseError{Message: "tokenizing error", Offset: tok.Pos}

	case SPLAT:
		p.lex = save
		frag := p.builder.Symbol(tr)
		return p.builder.Closure(frag), nil

	case PTR:
		p.lex = save
		child, err := p.parseExpr()
		if err != nil {
			return nfa.Frag{}, err
		}
		tr.Child = p.builder.Finish(child)
		return p.builder.Symbol(tr), nil

	case TWOSPOT:
		p.lex = save
		strTok := p.lex.Next()
		if strTok.Kind == ERROR {
			return nfa.Frag{}, &ParseError{Message: "tokenizing error", Offset: strTok.Pos}
		}
		if strTok.Kind != STRING {
			return nfa.Frag{}, &ParseError{Message: "expecting a \"-delimited string", Offset: strTok.Pos}
		}
		restriction, err := nfa.CompileContentRestriction(strTok.Text)
		if err != nil {
			return nfa.Frag{}, &ParseError{Message: "error parsing regular expression: " + err.Error(), Offset: strTok.Pos}
		}
		tr.Content = restriction
		p.recordCaptureSite(restriction, tr.SetCapture, tr.SetContentGroupBase)
		return p.builder.Symbol(tr), nil

	case ANGLE:
		p.lex = save
		attrs, err := p.parseAttrs()
		if err != nil {
			return nfa.Frag{}, err
		}
		tr.Attrs = attrs

		save2 := p.lex.Clone()
		ptrTok := save2.Next()
		if ptrTok.Kind == PTR {
			p.lex = save2
			child, err := p.parseExpr()
			if err != nil {
				return nfa.Frag{}, err
			}
			tr.Child = p.builder.Finish(child)
		}
		return p.builder.Symbol(tr), nil

	default:
		return p.builder.Symbol(tr), nil
	}
}

// parseAttrs parses an attribute restriction list: "< foo="bar" baz >".
// The opening '<' has already been consumed by the caller.
func (p *Parser) parseAttrs() ([]*nfa.Attribute, error) {
	var attrs []*nfa.Attribute
	for {
		save := p.lex.Clone()
		tok := save.Next()
		if tok.Kind != SYMBOL {
			break
		}
		p.lex = save
		attr := &nfa.Attribute{Name: tok.Text}

		eqSave := p.lex.Clone()
		eqTok := eqSave.Next()
		if eqTok.Kind == HALFMESH {
			p.lex = eqSave
			strTok := p.lex.Next()
			if strTok.Kind != STRING {
				return nil, &ParseError{Message: "expecting a \"-delimited string", Offset: strTok.Pos}
			}
			restriction, err := nfa.CompileContentRestriction(strTok.Text)
			if err != nil {
				return nil, &ParseError{Message: "error parsing regular expression: " + err.Error(), Offset: strTok.Pos}
			}
			attr.HasValuePattern = true
			attr.ValueRegex = restriction
			p.recordCaptureSite(restriction, attr.SetCapture, attr.SetValueGroupBase)
		}
		attrs = append(attrs, attr)
	}

	closeTok := p.lex.Next()
	if closeTok.Kind != RIGHTANGLE {
		return nil, &ParseError{
			Message: `expecting attribute list, ie <name="value" name2="value2">`,
			Offset:  closeTok.Pos,
		}
	}
	return attrs, nil
}

// maybeClosure wraps frag in a Closure if the next token is '*'.
func (p *Parser) maybeClosure(frag nfa.Frag) (nfa.Frag, error) {
	save := p.lex.Clone()
	tok := save.Next()
	if tok.Kind == ERROR {
		return nfa.Frag{}, &ParseError{Message: "tokenizing error", Offset: tok.Pos}
	}
	if tok.Kind == SPLAT {
		p.lex = save
		return p.builder.Closure(frag), nil
	}
	return frag, nil
}
