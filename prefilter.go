package luapat

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

const (
	// prefixMaxAlts caps how many alternative literal prefixes are expanded
	// from leading bracket sets; the prefixes stop growing at the item that
	// would exceed it.
	prefixMaxAlts = 32
	// prefixMaxLen caps the length of the extracted literal prefixes.
	prefixMaxLen = 16
)

// prefilter speeds up the scan loop for unanchored patterns that can only
// start with one of a small set of literal strings. A single prefix scans
// with strings.Index; several alternatives share an Aho-Corasick automaton.
// The prefilter only proposes candidate start positions; the matcher still
// decides, so it never changes what matches.
type prefilter struct {
	lit string
	ac  *ahocorasick.Automaton
}

func buildPrefilter(pat string, begin int, anchor bool) *prefilter {
	if anchor {
		return nil
	}
	lits := literalPrefixes(pat, begin)
	switch {
	case len(lits) == 0:
		return nil
	case len(lits) == 1:
		return &prefilter{lit: lits[0]}
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &prefilter{ac: auto}
}

// scanner returns a function that reports the first candidate match start at
// or after the given subject index, or -1 when the subject has no further
// candidates. A nil scanner means every position is a candidate.
func (pf *prefilter) scanner(src string) func(int) int {
	if pf == nil {
		return nil
	}
	if pf.ac != nil {
		haystack := []byte(src)
		return func(at int) int {
			if at > len(haystack) {
				return -1
			}
			m := pf.ac.Find(haystack, at)
			if m == nil {
				return -1
			}
			return m.Start
		}
	}
	return func(at int) int {
		if at > len(src) {
			return -1
		}
		i := strings.Index(src[at:], pf.lit)
		if i < 0 {
			return -1
		}
		return at + i
	}
}

// literalPrefixes expands the mandatory literal prefix of a pattern into its
// alternatives. Literal units, escaped literals, and bracket sets made only
// of plain members widen the prefix set; the walk stops at the first item
// that is optional, repeatable, or not enumerable. An item suffixed with '+'
// is included once and ends the prefix. The result is nil when the pattern
// has no mandatory leading literal.
func literalPrefixes(pat string, begin int) []string {
	lits := []string{""}
	p := begin
	for p < len(pat) {
		var alts []byte
		var ep int
		switch pat[p] {
		case '(', ')', '$', '.', '*', '+', '?', '-':
			return mandatory(lits)
		case patEsc:
			if p+1 >= len(pat) || isAlnum(pat[p+1]) {
				return mandatory(lits) // class escape, %b, or backreference
			}
			alts, ep = []byte{pat[p+1]}, p+2
		case '[':
			alts, ep = bracketAlts(pat, p)
			if alts == nil {
				return mandatory(lits)
			}
		default:
			alts, ep = []byte{pat[p]}, p+1
		}
		var suffix byte
		if ep < len(pat) {
			suffix = pat[ep]
		}
		switch suffix {
		case '*', '?', '-':
			return mandatory(lits) // item may match zero times
		}
		if len(lits)*len(alts) > prefixMaxAlts || len(lits[0]) >= prefixMaxLen {
			return mandatory(lits)
		}
		next := make([]string, 0, len(lits)*len(alts))
		for _, lit := range lits {
			for _, c := range alts {
				next = append(next, lit+string(c))
			}
		}
		lits = next
		if suffix == '+' {
			return mandatory(lits) // first repetition is mandatory, rest is not
		}
		p = ep
	}
	return mandatory(lits)
}

func mandatory(lits []string) []string {
	if len(lits[0]) == 0 {
		return nil
	}
	return lits
}

// bracketAlts enumerates a bracket set whose members are all plain literals.
// Negated sets, classes, and ranges are not enumerable.
func bracketAlts(pat string, p int) ([]byte, int) {
	ep := classEnd(pat, p)
	ec := ep - 1
	if pat[p+1] == '^' {
		return nil, ep
	}
	var alts []byte
	for q := p + 1; q < ec; q++ {
		if pat[q] == patEsc {
			q++
			if isAlnum(pat[q]) {
				return nil, ep // class escape
			}
			alts = append(alts, pat[q])
			continue
		}
		if q+1 < ec && pat[q+1] == '-' && q+2 < ec {
			return nil, ep // range
		}
		alts = append(alts, pat[q])
	}
	if len(alts) > prefixMaxAlts {
		return nil, ep
	}
	return alts, ep
}
