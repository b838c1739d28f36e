// Package errs holds the failure kinds shared by the theory packages.
//
// Every kind has a sentinel (ErrInvalidOctave, ...) so callers can test with
// errors.Is no matter how much context was wrapped around the original error.
package errs

import "fmt"

type Kind int

const (
	InvalidPitch Kind = iota + 1
	InvalidOctave
	InvalidIntervalDegree
	InvalidIntervalQuality
	IntervalParseError
	InvalidScaleDegree
	InvalidChordQuality
	UnsupportedChord
)

func (k Kind) String() string {
	switch k {
	case InvalidPitch:
		return "invalid pitch"
	case InvalidOctave:
		return "invalid octave"
	case InvalidIntervalDegree:
		return "invalid interval degree"
	case InvalidIntervalQuality:
		return "invalid interval quality"
	case IntervalParseError:
		return "interval parse error"
	case InvalidScaleDegree:
		return "invalid scale degree"
	case InvalidChordQuality:
		return "invalid chord quality"
	case UnsupportedChord:
		return "unsupported chord"
	default:
		return "unknown error"
	}
}

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is matches any *Error of the same kind, so sentinels compare by kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidPitch           = &Error{Kind: InvalidPitch}
	ErrInvalidOctave          = &Error{Kind: InvalidOctave}
	ErrInvalidIntervalDegree  = &Error{Kind: InvalidIntervalDegree}
	ErrInvalidIntervalQuality = &Error{Kind: InvalidIntervalQuality}
	ErrIntervalParse          = &Error{Kind: IntervalParseError}
	ErrInvalidScaleDegree     = &Error{Kind: InvalidScaleDegree}
	ErrInvalidChordQuality    = &Error{Kind: InvalidChordQuality}
	ErrUnsupportedChord       = &Error{Kind: UnsupportedChord}
)

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf walks the wrap chain and reports the first kind found.
func KindOf(err error) (Kind, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			c, ok := err.(interface{ Cause() error })
			if !ok {
				return 0, false
			}
			err = c.Cause()
			continue
		}
		err = u.Unwrap()
	}
	return 0, false
}
