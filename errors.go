// ABOUTME: Sentinel errors for ULID parsing and validation.
// ABOUTME: Callers match with errors.Is; detail is layered on with fmt.Errorf %w.
package ulid

import "errors"

var (
	// ErrInvalidFormat indicates input that is not a ULID: wrong length, a
	// character outside the alphabet, or a timestamp beyond 48 bits. Every
	// parse and unmarshal error wraps it.
	ErrInvalidFormat = errors.New("invalid ulid format")
)
