package treexpr

import "github.com/coregx/treexpr/nfa"

// Config controls pattern compilation and matching behavior.
type Config struct {
	// RejectTrailingInput controls whether Compile treats unconsumed
	// pattern text after a syntactically complete expression as an error.
	// The reference grammar's own parse_treexpr never checks this —
	// callers historically just ignored whatever parse_treexpr's return
	// pointer left unconsumed. Compile resolves that silently-ambiguous
	// behavior explicitly: by default, trailing residue is rejected so a
	// typo like "div )" surfaces immediately instead of silently
	// compiling "div" and discarding the rest. Set false to restore the
	// permissive historical behavior.
	// Default: true
	RejectTrailingInput bool

	// MaxCaptureGroups caps the total number of capture slots a single
	// pattern (including every nested "-> subpattern") may register.
	// Default: nfa.RESUBR (10)
	MaxCaptureGroups int
}

// DefaultConfig returns the default Config used by Compile.
func DefaultConfig() Config {
	return Config{
		RejectTrailingInput: true,
		MaxCaptureGroups:    nfa.RESUBR,
	}
}
