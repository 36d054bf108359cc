package luapat

type (
	// Capture is one captured piece of a match. A position capture carries no
	// text; it records the subject offset at which the empty '()' matched.
	Capture struct {
		Text  string
		Start int
		Pos   bool
	}
	// MatchResult is the outcome of a successful match: where the whole match
	// sits in the subject and what the pattern captured. A pattern without
	// captures gets a single implicit capture holding the whole match, so
	// At(0) is always meaningful.
	MatchResult struct {
		src   string
		start int
		end   int
		caps  []Capture
	}
)

func newMatchResult(src string, start, end int, cs *captureStore) *MatchResult {
	mr := &MatchResult{src: src, start: start, end: end}
	if cs.level == 0 {
		mr.caps = []Capture{{Text: src[start:end], Start: start}}
		return mr
	}
	mr.caps = make([]Capture, cs.level)
	for i := range cs.level {
		c := cs.get(i)
		if c.length == capPosition {
			mr.caps[i] = Capture{Start: c.start, Pos: true}
		} else {
			mr.caps[i] = Capture{Text: src[c.start : c.start+c.length], Start: c.start}
		}
	}
	return mr
}

// Position returns the subject indices where the match starts and ends. The
// end index is one past the last matched unit.
func (mr *MatchResult) Position() (int, int) { return mr.start, mr.end }

// Len returns the length of the whole match.
func (mr *MatchResult) Len() int { return mr.end - mr.start }

// Text returns the whole matched substring.
func (mr *MatchResult) Text() string { return mr.src[mr.start:mr.end] }

// Size returns the number of captures.
func (mr *MatchResult) Size() int { return len(mr.caps) }

// At returns capture i. It returns a CaptureOutOfRange error when the result
// has no capture at that index.
func (mr *MatchResult) At(i int) (Capture, error) {
	if i < 0 || i >= len(mr.caps) {
		return Capture{}, &Error{Kind: CaptureOutOfRange}
	}
	return mr.caps[i], nil
}

// Captures returns all captures in order.
func (mr *MatchResult) Captures() []Capture { return mr.caps }
