package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var reKey = regexp.MustCompile(`^[1-9]+$`)

// Key is the column order of a round. Each entry is the 1-based column whose
// contents are read (encode) or written (decode) at that position.
type Key []int

// ParseKey converts s into a Key. Only the character class is checked here;
// digits larger than the key length are reported by CheckRange.
func ParseKey(s string) (Key, error) {
	if !reKey.MatchString(s) {
		return nil, &OpError{
			Op:   "key.parse",
			Kind: KindValidation,
			Err:  fmt.Errorf("%w: %q must contain only digits 1..9", ErrInvalidKey, s),
		}
	}

	k := make(Key, 0, len(s))
	for _, r := range s {
		k = append(k, int(r-'0'))
	}
	return k, nil
}

// Columns is the grid width implied by the key.
func (k Key) Columns() int { return len(k) }

func (k Key) String() string {
	var b strings.Builder
	b.Grow(len(k))
	for _, d := range k {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// CheckRange returns a *DigitError for the first digit that does not address
// one of the key's own columns.
func (k Key) CheckRange() error {
	for _, d := range k {
		if d < 1 || d > len(k) {
			return &DigitError{Digit: d, Columns: len(k), Err: ErrKeyOutOfRange}
		}
	}
	return nil
}

// IsPermutation reports whether every column 1..len(k) appears exactly once.
func (k Key) IsPermutation() bool {
	seen := make([]bool, len(k)+1)
	for _, d := range k {
		if d < 1 || d > len(k) || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}
