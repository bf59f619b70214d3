package usecase

import (
	"errors"
	"fmt"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

// UserMessage maps a round error to the single line shown at the prompt.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var de *domain.DigitError
	hasDigit := errors.As(err, &de)

	switch {
	case errors.Is(err, domain.ErrInvalidPlaintext):
		return "Error: Plaintext must not contain numbers (0-9)."
	case errors.Is(err, domain.ErrInvalidKey):
		return "Error: Key must be a positive integer composed of digits 1..9 (no 0)."
	case errors.Is(err, domain.ErrKeyNotPermuted) && hasDigit:
		return fmt.Sprintf("Error: Key must use each digit 1..%d exactly once.", de.Columns)
	case errors.Is(err, domain.ErrInvalidPad):
		return "Error: Pad length must be smaller than the key length."
	case domain.IsKind(err, domain.KindOutOfRange) && hasDigit:
		return fmt.Sprintf("Error: Key digit out of range: %d", de.Digit)
	case errors.Is(err, domain.ErrKeyOutOfRange) && hasDigit:
		return fmt.Sprintf("Error: Key digit %d exceeds key length %d.", de.Digit, de.Columns)
	default:
		return "Error: " + err.Error()
	}
}

// IsRoundError reports whether err only abandons the current round.
func IsRoundError(err error) bool {
	return domain.IsKind(err, domain.KindValidation) || domain.IsKind(err, domain.KindOutOfRange)
}
