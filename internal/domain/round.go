package domain

import "unicode/utf8"

// Options tune a cipher round.
type Options struct {
	// Filler pads the last grid row. Zero means DefaultFiller.
	Filler rune

	// RequirePermutation rejects keys that repeat or skip a column.
	RequirePermutation bool
}

// FillerOrDefault returns the configured filler or DefaultFiller.
func (o Options) FillerOrDefault() rune {
	if o.Filler == 0 {
		return DefaultFiller
	}
	return o.Filler
}

// Dimensions describes the grid of a round.
type Dimensions struct {
	Columns int
	Rows    int
	Pad     int
}

// ComputeDimensions derives the grid size for a text of textLen runes laid
// out over columns columns. Pad is always < columns.
func ComputeDimensions(textLen, columns int) Dimensions {
	if columns <= 0 {
		return Dimensions{}
	}

	pad := 0
	if rem := textLen % columns; rem != 0 {
		pad = columns - rem
	}
	return Dimensions{
		Columns: columns,
		Rows:    (textLen + pad) / columns,
		Pad:     pad,
	}
}

// Cells is the number of characters the grid holds.
func (d Dimensions) Cells() int { return d.Columns * d.Rows }

// Round is the validated input of one encode/decode cycle. It is a plain
// value; nothing in it is shared between rounds.
type Round struct {
	Plaintext string
	Key       Key
	Dims      Dimensions
	Filler    rune
}

// NewRound computes the grid dimensions for plaintext under key.
func NewRound(plaintext string, key Key, opts Options) Round {
	return Round{
		Plaintext: plaintext,
		Key:       key,
		Dims:      ComputeDimensions(utf8.RuneCountInString(plaintext), key.Columns()),
		Filler:    opts.FillerOrDefault(),
	}
}

// Encoding is the output of the grid encoder.
type Encoding struct {
	Ciphertext string
	Grid       Grid
}

// Decoding is the output of the grid decoder.
type Decoding struct {
	// Groups are the ciphertext slices assigned to each key position.
	Groups []string
	Grid   Grid
	// Padded is the row-major reading of Grid before the pad is stripped.
	Padded    string
	Plaintext string
	Mismatch  *LengthMismatch
}

// RoundResult is everything a round produced.
type RoundResult struct {
	Round    Round
	Encoding Encoding
	Decoding Decoding
}
