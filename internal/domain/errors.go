package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidPlaintext = errors.New("invalid plaintext")
	ErrInvalidKey       = errors.New("invalid key")
	ErrKeyOutOfRange    = errors.New("key digit out of range")
	ErrKeyNotPermuted   = errors.New("key is not a permutation")
	ErrInvalidPad       = errors.New("invalid pad length")
	ErrNotFound         = errors.New("not found")
	ErrInvalidConfig    = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindOutOfRange    ErrorKind = "out_of_range"
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// DigitError carries the offending key digit for range failures.
type DigitError struct {
	Digit   int
	Columns int
	Err     error
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("digit %d (columns=%d): %v", e.Digit, e.Columns, e.Err)
}

func (e *DigitError) Unwrap() error { return e.Err }

// LengthMismatch is the non-fatal warning raised when a ciphertext does not
// fill the grid exactly.
type LengthMismatch struct {
	Expected int
	Got      int
}

func (w LengthMismatch) String() string {
	return fmt.Sprintf("ciphertext length mismatch; expected %d got %d", w.Expected, w.Got)
}
