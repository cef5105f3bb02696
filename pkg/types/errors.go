package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
// The kinds mirror the result-code conventions of the legacy profile API:
// handlers report them in place of SetLastError values, and cache-level
// failures are absorbed and logged rather than surfaced.
type ErrKind int

const (
	ErrKindInvalidArgument    ErrKind = iota // required pointer/argument missing
	ErrKindInsufficientBuffer                // destination buffer too small (non-fatal, output is truncated-and-terminated)
	ErrKindFileNotFound                      // no file path supplied to a handler
	ErrKindParseIO                           // document load/save failure (degrades, never propagates)
	ErrKindState                             // invalid operation for current state (e.g., no instance)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so wrapped causes still compare
// equal to the package sentinels via errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels returned by handlers and internal layers.
var (
	// ErrInvalidArgument indicates a required argument was nil.
	ErrInvalidArgument = &Error{Kind: ErrKindInvalidArgument, Msg: "invalid argument"}
	// ErrInsufficientBuffer indicates the destination buffer could not hold the
	// full result. The buffer still contains a null-terminated prefix.
	ErrInsufficientBuffer = &Error{Kind: ErrKindInsufficientBuffer, Msg: "insufficient buffer"}
	// ErrFileNotFound indicates no file path was supplied.
	ErrFileNotFound = &Error{Kind: ErrKindFileNotFound, Msg: "file not found"}
	// ErrParseIO indicates a document failed to load from or save to disk.
	ErrParseIO = &Error{Kind: ErrKindParseIO, Msg: "parse or I/O failure"}
	// ErrNoInstance indicates the process-scoped redirector was not created yet.
	ErrNoInstance = &Error{Kind: ErrKindState, Msg: "redirector instance not created"}
)

// WrapParseIO attaches an underlying cause to the parse/IO category.
func WrapParseIO(msg string, err error) *Error {
	return &Error{Kind: ErrKindParseIO, Msg: msg, Err: err}
}
