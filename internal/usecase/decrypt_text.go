package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
	"github.com/cahanap/cj-s-table-cipher/internal/usecase/transpose"
)

// DecryptText decodes a ciphertext on its own, without the plaintext that
// produced it. The grid height is derived from the ciphertext length and the
// caller supplies the pad length to strip.
type DecryptText struct {
	validator *ValidateInput
	opts      domain.Options
}

func NewDecryptText(opts domain.Options) *DecryptText {
	return &DecryptText{validator: NewValidateInput(opts), opts: opts}
}

func (uc *DecryptText) Execute(ctx context.Context, ciphertext, key string, pad int) (domain.Round, domain.Decoding, error) {
	if err := ctx.Err(); err != nil {
		return domain.Round{}, domain.Decoding{}, err
	}

	k, err := uc.validator.Key(key)
	if err != nil {
		return domain.Round{}, domain.Decoding{}, err
	}

	cols := k.Columns()
	if pad < 0 || pad >= cols {
		return domain.Round{}, domain.Decoding{}, &domain.OpError{
			Op:   "decrypt.pad",
			Kind: domain.KindValidation,
			Err:  fmt.Errorf("%w: %d (must be 0..%d)", domain.ErrInvalidPad, pad, cols-1),
		}
	}

	n := utf8.RuneCountInString(ciphertext)
	round := domain.Round{
		Key: k,
		Dims: domain.Dimensions{
			Columns: cols,
			Rows:    (n + cols - 1) / cols,
			Pad:     pad,
		},
		Filler: uc.opts.FillerOrDefault(),
	}

	dec, err := transpose.Decode(ciphertext, round)
	if err != nil {
		return round, domain.Decoding{}, err
	}
	round.Plaintext = dec.Plaintext
	return round, dec, nil
}
