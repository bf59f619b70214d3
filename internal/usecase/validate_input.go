package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

var reDigit = regexp.MustCompile(`[0-9]`)

type ValidateInput struct {
	opts domain.Options
}

func NewValidateInput(opts domain.Options) *ValidateInput {
	return &ValidateInput{opts: opts}
}

// Plaintext rejects text containing any decimal digit. The text is not trimmed.
func (uc *ValidateInput) Plaintext(s string) error {
	if reDigit.MatchString(s) {
		return &domain.OpError{
			Op:   "validate.plaintext",
			Kind: domain.KindValidation,
			Err:  fmt.Errorf("%w: contains digits", domain.ErrInvalidPlaintext),
		}
	}
	return nil
}

// Key trims s and parses it. Besides the 1..9 character class every digit
// must address one of the key's own columns, and with RequirePermutation set
// each column must appear exactly once.
func (uc *ValidateInput) Key(s string) (domain.Key, error) {
	const op = "validate.key"

	k, err := domain.ParseKey(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	if err := k.CheckRange(); err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindValidation, Err: err}
	}
	if uc.opts.RequirePermutation && !k.IsPermutation() {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindValidation,
			Err:  &domain.DigitError{Columns: len(k), Err: domain.ErrKeyNotPermuted},
		}
	}
	return k, nil
}

// Execute validates both inputs and returns the round they describe.
func (uc *ValidateInput) Execute(ctx context.Context, plaintext, key string) (domain.Round, error) {
	if err := ctx.Err(); err != nil {
		return domain.Round{}, err
	}
	if err := uc.Plaintext(plaintext); err != nil {
		return domain.Round{}, err
	}
	k, err := uc.Key(key)
	if err != nil {
		return domain.Round{}, err
	}
	return domain.NewRound(plaintext, k, uc.opts), nil
}
