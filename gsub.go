package luapat

import (
	"strconv"
	"strings"
)

// Gsub replaces up to limit matches of the pattern in src with the expansion
// of the repl template and returns the resulting string. A negative limit
// replaces every match; a limit of zero returns src unchanged.
//
// Inside repl, '%%' stands for a literal '%', '%0' for the whole match, and
// '%1' through '%9' for the corresponding capture. A position capture
// expands to its 1-based subject offset in decimal. Any other use of '%' is
// an InvalidPercentUse error.
func (p *Pattern) Gsub(src, repl string, limit int) (string, error) {
	return p.gsub(src, limit, func(out *strings.Builder, mr *MatchResult) error {
		return expandTemplate(out, repl, mr)
	})
}

// GsubFunc is like Gsub but derives each replacement by calling repl with
// the match result.
func (p *Pattern) GsubFunc(src string, repl func(*MatchResult) string, limit int) (string, error) {
	return p.gsub(src, limit, func(out *strings.Builder, mr *MatchResult) error {
		out.WriteString(repl(mr))
		return nil
	})
}

// Gsub parses pat and substitutes matches in src with the repl template.
func Gsub(pat, src, repl string, limit int) (string, error) {
	p, err := Parse(pat)
	if err != nil {
		return "", err
	}
	return p.Gsub(src, repl, limit)
}

// GsubFunc parses pat and substitutes matches in src with the results of repl.
func GsubFunc(pat, src string, repl func(*MatchResult) string, limit int) (string, error) {
	p, err := Parse(pat)
	if err != nil {
		return "", err
	}
	return p.GsubFunc(src, repl, limit)
}

func (p *Pattern) gsub(src string, limit int, emit func(*strings.Builder, *MatchResult) error) (string, error) {
	var out strings.Builder
	out.Grow(len(src))
	it := p.Iter(src)
	last := 0
	for limit != 0 {
		mr, err := it.Next()
		if err != nil {
			return "", err
		}
		if mr == nil {
			break
		}
		start, end := mr.Position()
		out.WriteString(src[last:start])
		if err := emit(&out, mr); err != nil {
			return "", err
		}
		last = end
		limit--
	}
	out.WriteString(src[last:])
	return out.String(), nil
}

func expandTemplate(out *strings.Builder, repl string, mr *MatchResult) error {
	for i := 0; i < len(repl); i++ {
		if repl[i] != patEsc {
			out.WriteByte(repl[i])
			continue
		}
		i++
		if i == len(repl) {
			return &Error{Kind: InvalidPercentUse}
		}
		switch c := repl[i]; {
		case c == patEsc:
			out.WriteByte(patEsc)
		case c == '0':
			out.WriteString(mr.Text())
		case c >= '1' && c <= '9':
			sub, err := mr.At(int(c) - '1')
			if err != nil {
				return &Error{Kind: InvalidCaptureIndex}
			}
			if sub.Pos {
				out.WriteString(strconv.Itoa(sub.Start + 1))
			} else {
				out.WriteString(sub.Text)
			}
		default:
			return &Error{Kind: InvalidPercentUse}
		}
	}
	return nil
}
