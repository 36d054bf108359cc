package luapat

// Find returns the first match of the pattern in src, or nil when the
// pattern does not match anywhere. An anchored pattern is only tried at the
// start of the subject.
func (p *Pattern) Find(src string) (*MatchResult, error) {
	ms := newMatchState(src, p)
	scan := p.pf.scanner(src)
	pos := 0
	if scan != nil {
		if pos = scan(0); pos < 0 {
			return nil, nil
		}
	}
	for pos <= len(src) {
		ms.reset()
		e, ok, err := ms.match(pos, p.begin)
		if err != nil {
			return nil, err
		}
		if ok {
			return newMatchResult(src, pos, e, &ms.caps), nil
		}
		if p.anchor {
			break
		}
		pos++
		if scan != nil {
			if pos = scan(pos); pos < 0 {
				break
			}
		}
	}
	return nil, nil
}

// Find parses pat and returns its first match in src.
func Find(pat, src string) (*MatchResult, error) {
	p, err := Parse(pat)
	if err != nil {
		return nil, err
	}
	return p.Find(src)
}
