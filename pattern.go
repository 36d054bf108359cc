package luapat

const (
	// maxCaptures is the maximum number of captures a pattern can make during
	// a single match.
	maxCaptures = 32
	// maxRecursion bounds both the number of items in a pattern and the
	// backtracking depth of the matcher.
	maxRecursion = 200

	patEsc = '%'
)

type (
	capState uint8

	// Pattern is a validated pattern. A Pattern that was built without error
	// is structurally sound, so matching it never fails except for exceeding
	// the recursion bound.
	Pattern struct {
		src    string
		begin  int
		anchor bool
		pf     *prefilter
	}
)

const (
	capAvailable capState = iota
	capOpen
	capFinished
)

// Parse validates a pattern in a single forward scan and returns a reusable
// Pattern. A leading '^' anchors the pattern to the start of the subject and
// is not part of the items to match.
func Parse(src string) (*Pattern, error) {
	end := len(src)
	anchor := end > 0 && src[0] == '^'
	begin := 0
	if anchor {
		begin = 1
	}

	var caps [maxCaptures]capState
	level, depth := 0, 0
	q := begin
	for q < end {
		switch src[q] {
		case '(':
			if level >= maxCaptures {
				return nil, &Error{Kind: TooManyCaptures}
			}
			caps[level] = capOpen
			level++
			q++
			depth++
			continue
		case ')':
			i := level - 1
			for i >= 0 && caps[i] != capOpen {
				i--
			}
			if i < 0 {
				return nil, &Error{Kind: InvalidPatternCapture}
			}
			caps[i] = capFinished
			q++
			depth++
			continue
		case '$':
			q++
			continue
		case patEsc:
			q++
			if q == end {
				return nil, &Error{Kind: EndsWithPercent}
			}
			switch {
			case src[q] == 'b':
				q += 3
				if q > end {
					return nil, &Error{Kind: BalancedNoArguments}
				}
				continue
			case src[q] == 'f':
				q++
				if q == end || src[q] != '[' {
					return nil, &Error{Kind: FrontierNoOpenBracket}
				}
				var err error
				if q, err = bracketEnd(src, q); err != nil {
					return nil, err
				}
				continue
			case src[q] >= '0' && src[q] <= '9':
				i := int(src[q]) - '1'
				if i < 0 || i >= level || caps[i] != capFinished {
					return nil, &Error{Kind: InvalidCaptureIndex}
				}
				q++
				continue
			}
			// escaped class or literal; the optional suffix follows
			q++
		case '[':
			var err error
			if q, err = bracketEnd(src, q); err != nil {
				return nil, err
			}
		default:
			q++
		}
		if q < end {
			switch src[q] {
			case '*', '+', '?', '-':
				q++
			}
		}
		depth++
	}

	for i := range level {
		if caps[i] != capFinished {
			return nil, &Error{Kind: UnfinishedCapture}
		}
	}
	if depth > maxRecursion {
		return nil, &Error{Kind: TooComplex}
	}
	return &Pattern{
		src:    src,
		begin:  begin,
		anchor: anchor,
		pf:     buildPrefilter(src, begin, anchor),
	}, nil
}

// MustParse is like Parse but panics on an invalid pattern. It is intended
// for patterns known to be valid at compile time.
func MustParse(src string) *Pattern {
	p, err := Parse(src)
	if err != nil {
		panic(`luapat: Parse(` + src + `): ` + err.Error())
	}
	return p
}

// String returns the pattern source.
func (p *Pattern) String() string { return p.src }

// Anchor reports whether the pattern started with '^'.
func (p *Pattern) Anchor() bool { return p.anchor }

// bracketEnd scans a '[...]' set starting at q and returns the index just
// past the closing ']'. The first element after '[' or '[^' never closes the
// set, which makes a leading ']' an ordinary member and rejects empty sets.
func bracketEnd(src string, q int) (int, error) {
	end := len(src)
	q++
	if q < end && src[q] == '^' {
		q++
	}
	for {
		if q >= end {
			return 0, &Error{Kind: MissingClosingBracket}
		}
		if src[q] == patEsc {
			q++ // skip escapes (e.g. '%]')
		}
		q++
		if q < end && src[q] == ']' {
			return q + 1, nil
		}
	}
}
