package luapat

type (
	// ErrorKind is an enum to describe what went wrong while parsing a pattern,
	// expanding a replacement template, or accessing a match result.
	ErrorKind int
	// Error captures all errors raised by luapat. Every error carries a kind so
	// that callers can handle them in a uniform way instead of matching on
	// message text.
	Error struct {
		Kind ErrorKind
	}
)

const (
	// TooComplex is returned when a pattern has too many items or the matcher
	// would recurse too deeply while backtracking.
	TooComplex ErrorKind = iota
	// EndsWithPercent is returned when a pattern ends with a '%' escape that
	// has nothing following it.
	EndsWithPercent
	// MissingClosingBracket is returned when a '[' set is never closed.
	MissingClosingBracket
	// BalancedNoArguments is returned when '%b' is missing its two delimiters.
	BalancedNoArguments
	// FrontierNoOpenBracket is returned when '%f' is not followed by a set.
	FrontierNoOpenBracket
	// TooManyCaptures is returned when a pattern opens more captures than the
	// engine supports.
	TooManyCaptures
	// InvalidPatternCapture is returned for a ')' with no capture left to close.
	InvalidPatternCapture
	// InvalidCaptureIndex is returned for a '%n' that references a capture that
	// does not exist or is not finished yet.
	InvalidCaptureIndex
	// UnfinishedCapture is returned when captures are still open at pattern end.
	UnfinishedCapture
	// CaptureOutOfRange is returned by MatchResult.At for an index past the
	// last capture.
	CaptureOutOfRange
	// InvalidPercentUse is returned for a '%' in a replacement template that is
	// not followed by '%' or a digit.
	InvalidPercentUse
)

func (err *Error) Error() string {
	switch err.Kind {
	case TooComplex:
		return "pattern too complex"
	case EndsWithPercent:
		return "malformed pattern (ends with '%')"
	case MissingClosingBracket:
		return "malformed pattern (missing ']')"
	case BalancedNoArguments:
		return "malformed pattern (missing arguments to '%b')"
	case FrontierNoOpenBracket:
		return "missing '[' after '%f' in pattern"
	case TooManyCaptures:
		return "too many captures"
	case InvalidPatternCapture:
		return "invalid pattern capture"
	case InvalidCaptureIndex:
		return "invalid capture index"
	case UnfinishedCapture:
		return "unfinished capture"
	case CaptureOutOfRange:
		return "capture out of range"
	case InvalidPercentUse:
		return "invalid use of '%' in replacement string"
	default:
		return "pattern error"
	}
}
