// Package transpose implements the columnar transposition at the heart of the
// table cipher. Encode and Decode are pure: they return the text they produce
// together with the grid they built and leave presentation to the caller.
package transpose

import (
	"fmt"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

// Encode pads the round plaintext with the filler, writes it into the grid row
// by row and emits each column named by the key, in key order, top to bottom.
// Duplicate key digits emit their column once per occurrence.
func Encode(r domain.Round) (domain.Encoding, error) {
	const op = "transpose.encode"

	d := r.Dims
	if err := checkKey(op, r.Key, d.Columns); err != nil {
		return domain.Encoding{}, err
	}
	filler := fillerOf(r)

	padded := []rune(r.Plaintext)
	for i := 0; i < d.Pad; i++ {
		padded = append(padded, filler)
	}
	if len(padded) != d.Cells() {
		return domain.Encoding{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("padded length %d does not fill a %dx%d grid", len(padded), d.Rows, d.Columns),
		}
	}

	grid := domain.NewGrid(d.Rows, d.Columns, filler)
	for i, ch := range padded {
		grid[i/d.Columns][i%d.Columns] = ch
	}

	var b strings.Builder
	b.Grow(len(r.Key) * d.Rows)
	for _, digit := range r.Key {
		col := digit - 1
		for row := range grid {
			b.WriteRune(grid[row][col])
		}
	}

	return domain.Encoding{Ciphertext: b.String(), Grid: grid}, nil
}

// checkKey rejects keys whose digits do not map into [0, columns-1].
func checkKey(op string, key domain.Key, columns int) error {
	if len(key) == 0 || columns <= 0 {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindValidation,
			Err:  fmt.Errorf("%w: empty key", domain.ErrInvalidKey),
		}
	}
	for _, digit := range key {
		if digit < 1 || digit > columns {
			return &domain.OpError{
				Op:   op,
				Kind: domain.KindOutOfRange,
				Err:  &domain.DigitError{Digit: digit, Columns: columns, Err: domain.ErrKeyOutOfRange},
			}
		}
	}
	return nil
}

func fillerOf(r domain.Round) rune {
	if r.Filler == 0 {
		return domain.DefaultFiller
	}
	return r.Filler
}
