// Package errs defines the sentinel errors and error-kind taxonomy shared by
// every seqio package, plus the process-wide error handler capability.
//
// Functions throughout seqio return one of the sentinels below, or an error
// that unwraps to one (such as pool.PathError, which unwraps to ErrIO), so
// callers can classify failures with errors.Is/errors.As, or recover the
// coarse Kind with errs.KindOf.
package errs

import "errors"

// Kind classifies an error into one of a small, closed set of categories.
type Kind uint8

const (
	// KindUnknown is returned by KindOf for errors not produced by seqio.
	KindUnknown Kind = iota
	// KindInvalidParameter covers null pointers, out-of-range indices, and
	// unknown metadata keys.
	KindInvalidParameter
	// KindInvalidState covers calling a writer operation outside a
	// sequence, or reading a sequence reader that isn't positioned.
	KindInvalidState
	// KindFileNotFound covers a missing input path.
	KindFileNotFound
	// KindIO covers all filesystem failures: open, read, write, seek, mmap.
	KindIO
	// KindKeyNotFound covers a metadata lookup miss.
	KindKeyNotFound
	// KindOutOfMemory covers allocation failure during buffer growth.
	KindOutOfMemory
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindInvalidState:
		return "InvalidState"
	case KindFileNotFound:
		return "FileNotFound"
	case KindIO:
		return "Io"
	case KindKeyNotFound:
		return "KeyNotFound"
	case KindOutOfMemory:
		return "OutOfMemory"
	default:
		return "Unknown"
	}
}

// Sentinel errors. Wrap with fmt.Errorf("%s: %w", detail, ErrXxx) to attach
// context while keeping errors.Is working.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidState     = errors.New("invalid state")
	ErrFileNotFound     = errors.New("file not found")
	ErrIO               = errors.New("i/o error")
	ErrKeyNotFound      = errors.New("key not found")
	ErrOutOfMemory      = errors.New("out of memory")

	// ErrUnsupportedSignature and ErrUnsupportedVersion are Io-kind
	// diagnostics for a PNA header that doesn't match this reader.
	ErrUnsupportedSignature = errors.New("pna: unsupported signature")
	ErrUnsupportedVersion   = errors.New("pna: unsupported version")

	// ErrSequenceExhausted signals a read past the end of a sequence's
	// packed bases; per spec this is a hard error, not an EOF.
	ErrSequenceExhausted = errors.New("pna: attempting to read when none remain")

	// ErrNoMoreSequences signals iterator exhaustion, not a failure.
	ErrNoMoreSequences = errors.New("seqio: no more sequences")
)

var sentinelKind = map[error]Kind{
	ErrInvalidParameter:     KindInvalidParameter,
	ErrInvalidState:         KindInvalidState,
	ErrFileNotFound:         KindFileNotFound,
	ErrIO:                   KindIO,
	ErrKeyNotFound:          KindKeyNotFound,
	ErrOutOfMemory:          KindOutOfMemory,
	ErrUnsupportedSignature: KindIO,
	ErrUnsupportedVersion:   KindIO,
	ErrSequenceExhausted:    KindIO,
}

// KindOf classifies err by matching it (via errors.Is) against the sentinels
// above. Returns KindUnknown if err doesn't wrap any of them.
func KindOf(err error) Kind {
	for sentinel, kind := range sentinelKind {
		if errors.Is(err, sentinel) {
			return kind
		}
	}

	return KindUnknown
}
