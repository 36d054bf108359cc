package luapat

// matchState carries the subject, the pattern, and the capture stack for one
// match attempt. The depth counter bounds backtracking recursion so that
// adversarial patterns fail with TooComplex instead of blowing the stack.
type matchState struct {
	src   string
	pat   string
	pEnd  int
	depth int
	caps  captureStore
}

func newMatchState(src string, p *Pattern) *matchState {
	return &matchState{
		src:   src,
		pat:   p.src,
		pEnd:  len(p.src),
		depth: maxRecursion,
	}
}

func (ms *matchState) reset() {
	ms.depth = maxRecursion
	ms.caps.reset()
}

// match tries to match the pattern starting at pattern index p against the
// subject starting at index s. It returns the subject index just past the
// match. Sequential items advance iteratively; only capture boundaries,
// quantifier expansion, and the '?' fallback recurse.
func (ms *matchState) match(s, p int) (int, bool, error) {
	ms.depth--
	if ms.depth < 0 {
		return s, false, &Error{Kind: TooComplex}
	}
	defer func() { ms.depth++ }()

	for p != ms.pEnd {
		switch ms.pat[p] {
		case '(':
			return ms.startCapture(s, p)
		case ')':
			return ms.endCapture(s, p+1)
		case '$':
			if p+1 == ms.pEnd {
				return s, s == len(ms.src), nil
			}
			// not at pattern end; '$' is an ordinary literal
		case patEsc:
			switch ms.pat[p+1] {
			case 'b':
				e, ok := ms.matchBalance(s, p+2)
				if !ok {
					return s, false, nil
				}
				s, p = e, p+4
				continue
			case 'f':
				set := p + 2
				ep := classEnd(ms.pat, set)
				var prev, curr byte
				if s > 0 {
					prev = ms.src[s-1]
				}
				if s < len(ms.src) {
					curr = ms.src[s]
				}
				if !matchBracketClass(prev, ms.pat, set, ep-1) &&
					matchBracketClass(curr, ms.pat, set, ep-1) {
					p = ep
					continue
				}
				return s, false, nil
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				e, ok := ms.matchCapture(s, int(ms.pat[p+1])-'1')
				if !ok {
					return s, false, nil
				}
				s, p = e, p+2
				continue
			}
			// escaped class or literal; handled as a single item below
		}

		ep := classEnd(ms.pat, p)
		var suffix byte
		if ep < ms.pEnd {
			suffix = ms.pat[ep]
		}
		if !ms.singleMatch(s, p, ep) {
			switch suffix {
			case '*', '?', '-': // the item may match zero times
				p = ep + 1
				continue
			}
			return s, false, nil
		}
		switch suffix {
		case '?':
			if e, ok, err := ms.match(s+1, ep+1); ok || err != nil {
				return e, ok, err
			}
			p = ep + 1
		case '+':
			return ms.maxExpand(s+1, p, ep)
		case '*':
			return ms.maxExpand(s, p, ep)
		case '-':
			return ms.minExpand(s, p, ep)
		default:
			s++
			p = ep
		}
	}
	return s, true, nil
}

// singleMatch reports whether the single item at pattern index p matches the
// subject unit at s. The item ends just before ep.
func (ms *matchState) singleMatch(s, p, ep int) bool {
	if s >= len(ms.src) {
		return false
	}
	c := ms.src[s]
	switch ms.pat[p] {
	case '.': // matches any unit
		return true
	case patEsc:
		return matchClass(c, ms.pat[p+1])
	case '[':
		return matchBracketClass(c, ms.pat, p, ep-1)
	default:
		return ms.pat[p] == c
	}
}

// maxExpand matches the item at p as many times as possible, then backs off
// one repetition at a time until the rest of the pattern matches.
func (ms *matchState) maxExpand(s, p, ep int) (int, bool, error) {
	i := 0
	for ms.singleMatch(s+i, p, ep) {
		i++
	}
	for ; i >= 0; i-- {
		if e, ok, err := ms.match(s+i, ep+1); ok || err != nil {
			return e, ok, err
		}
	}
	return s, false, nil
}

// minExpand tries the rest of the pattern after every repetition count,
// growing one repetition at a time while the item still matches.
func (ms *matchState) minExpand(s, p, ep int) (int, bool, error) {
	for {
		if e, ok, err := ms.match(s, ep+1); ok || err != nil {
			return e, ok, err
		}
		if !ms.singleMatch(s, p, ep) {
			return s, false, nil
		}
		s++
	}
}

// matchBalance consumes a balanced run from the opening delimiter at
// subject index s to its matching close. The two delimiters are the pattern
// units at p and p+1. When they are equal there is no nesting and every
// occurrence counts as a close.
func (ms *matchState) matchBalance(s, p int) (int, bool) {
	if s >= len(ms.src) || ms.src[s] != ms.pat[p] {
		return s, false
	}
	b, e := ms.pat[p], ms.pat[p+1]
	count := 1
	for s++; s < len(ms.src); s++ {
		switch ms.src[s] {
		case e:
			count--
			if count == 0 {
				return s + 1, true
			}
		case b:
			count++
		}
	}
	return s, false // subject ends out of balance
}

// matchCapture matches a backreference to finished capture i. A reference to
// a position capture never matches.
func (ms *matchState) matchCapture(s, i int) (int, bool) {
	c := ms.caps.get(i)
	l := c.length
	if l < 0 || len(ms.src)-s < l {
		return s, false
	}
	if ms.src[c.start:c.start+l] == ms.src[s:s+l] {
		return s + l, true
	}
	return s, false
}

func (ms *matchState) startCapture(s, p int) (int, bool, error) {
	what := capUnfinished
	p++
	if p < ms.pEnd && ms.pat[p] == ')' { // position capture
		what = capPosition
		p++
	}
	if err := ms.caps.open(s, what); err != nil {
		return s, false, err
	}
	e, ok, err := ms.match(s, p)
	if !ok {
		ms.caps.rollback()
	}
	return e, ok, err
}

func (ms *matchState) endCapture(s, p int) (int, bool, error) {
	i, ok := ms.caps.close(s)
	if !ok {
		return s, false, nil
	}
	e, ok, err := ms.match(s, p)
	if !ok {
		ms.caps.reopen(i)
	}
	return e, ok, err
}
