package treexpr

import "github.com/coregx/treexpr/nfa"

// RenderTemplate expands `\1`..`\9` back-references in template against
// captures, a flat list of captures in document order (the same order
// Pattern.FindAll's Match.Groups returns). `\k` is replaced by the k-th
// capture's whole matched text; a back-reference past the end of captures,
// or pointing at a capture that never matched, is replaced with the empty
// string. A backslash followed by anything other than a digit 1-9 (or at
// the end of the template) is copied through unchanged.
//
// The scan is byte-wise, not codepoint-wise: non-ASCII bytes in template
// and in the substituted text pass through untouched, since `\k` can only
// ever be recognized from two consecutive ASCII bytes.
func RenderTemplate(template string, captures []*nfa.RegexMatch) string {
	out := make([]byte, 0, len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '\\' || i+1 >= len(template) {
			out = append(out, c)
			continue
		}
		next := template[i+1]
		if next < '1' || next > '9' {
			out = append(out, c)
			continue
		}
		k := int(next - '0')
		if k <= len(captures) && captures[k-1] != nil {
			out = append(out, captures[k-1].Whole...)
		}
		i++
	}
	return string(out)
}
