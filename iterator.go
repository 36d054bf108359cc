package luapat

// Iterator walks all non-overlapping matches of a pattern in a subject from
// left to right.
type Iterator struct {
	pat       *Pattern
	ms        *matchState
	scan      func(int) int
	pos       int
	lastMatch int
	done      bool
}

// Iter returns an iterator over all matches in src. An anchored pattern
// yields at most one match.
func (p *Pattern) Iter(src string) *Iterator {
	return &Iterator{
		pat:       p,
		ms:        newMatchState(src, p),
		scan:      p.pf.scanner(src),
		lastMatch: -1,
	}
}

// Next returns the next match, or nil when there are none left. After an
// empty match the iterator advances by one unit before trying again so that
// an empty match cannot repeat at the same spot.
func (it *Iterator) Next() (*MatchResult, error) {
	src := it.ms.src
	for !it.done && it.pos <= len(src) {
		it.ms.reset()
		e, ok, err := it.ms.match(it.pos, it.pat.begin)
		if err != nil {
			return nil, err
		}
		if ok && e != it.lastMatch {
			mr := newMatchResult(src, it.pos, e, &it.ms.caps)
			it.lastMatch = e
			it.pos = e
			it.done = it.pat.anchor
			return mr, nil
		}
		if it.pat.anchor {
			break
		}
		it.pos++
		if it.scan != nil {
			if it.pos = it.scan(it.pos); it.pos < 0 {
				break
			}
		}
	}
	it.done = true
	return nil, nil
}
