package uarengine

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy in spec §7. Each is distinguishable via
// errors.Is, and each carries the exact short human-readable string the
// instance boundary promises to reproduce verbatim.
var (
	ErrEmptyFile        = errors.New("EmptyFile")
	ErrNoDataRows        = errors.New("NoDataRows")
	ErrHeaderRead        = errors.New("HeaderRead")
	ErrEncodingDecode    = errors.New("EncodingDecode")
	ErrDeserializeIndex  = errors.New("DeserializeIndex")
	ErrPreconditionIndex = errors.New("PreconditionIndex")
	ErrArgumentCount     = errors.New("ArgumentCount")
)

// wrappedError attaches positional/contextual detail to one of the
// taxonomy sentinels while remaining errors.Is-comparable to it, mirroring
// the teacher's SQLUserError/SQLCodeParseErrors: a thin value wrapping a
// lower-level cause, rendered through a custom Error() string.
type wrappedError struct {
	sentinel error
	detail   string
}

func (w wrappedError) Error() string {
	if w.detail == "" {
		return w.sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", w.sentinel.Error(), w.detail)
}

func (w wrappedError) Unwrap() error {
	return w.sentinel
}

func wrapError(sentinel error, format string, args ...interface{}) error {
	return wrappedError{sentinel: sentinel, detail: fmt.Sprintf(format, args...)}
}
