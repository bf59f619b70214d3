package transpose

import (
	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

// Decode reverses Encode.
//
// The ciphertext is cut, in one forward pass, into one group of up to Rows
// characters per key position. Group i fills grid column key[i]-1; cells a
// short group cannot reach hold the filler. The grid is then read row by row
// and exactly Pad trailing characters are removed by position, so plaintext
// that itself ends in the filler survives intact.
//
// A ciphertext that does not fill the grid exactly is not an error: the
// result carries a LengthMismatch and decoding proceeds best effort.
func Decode(ciphertext string, r domain.Round) (domain.Decoding, error) {
	const op = "transpose.decode"

	d := r.Dims
	if err := checkKey(op, r.Key, d.Columns); err != nil {
		return domain.Decoding{}, err
	}
	filler := fillerOf(r)

	text := []rune(ciphertext)
	var mismatch *domain.LengthMismatch
	if len(text) != d.Cells() {
		mismatch = &domain.LengthMismatch{Expected: d.Cells(), Got: len(text)}
	}

	groups := make([][]rune, len(r.Key))
	idx := 0
	for i := range groups {
		end := min(idx+d.Rows, len(text))
		groups[i] = text[idx:end]
		idx = end
	}

	grid := domain.NewGrid(d.Rows, d.Columns, filler)
	for i, digit := range r.Key {
		g := groups[i]
		for row := 0; row < d.Rows; row++ {
			ch := filler
			if row < len(g) {
				ch = g[row]
			}
			grid[row][digit-1] = ch
		}
	}

	padded := grid.RowMajor()
	plain := padded
	if pr := []rune(padded); d.Pad > 0 && d.Pad <= len(pr) {
		plain = string(pr[:len(pr)-d.Pad])
	}

	out := domain.Decoding{
		Groups:    make([]string, len(groups)),
		Grid:      grid,
		Padded:    padded,
		Plaintext: plain,
		Mismatch:  mismatch,
	}
	for i, g := range groups {
		out.Groups[i] = string(g)
	}
	return out, nil
}
