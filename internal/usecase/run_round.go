package usecase

import (
	"context"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
	"github.com/cahanap/cj-s-table-cipher/internal/usecase/transpose"
)

// RunRound validates the inputs, encodes the plaintext and decodes the
// resulting ciphertext again with the same round parameters.
type RunRound struct {
	validator *ValidateInput
}

func NewRunRound(opts domain.Options) *RunRound {
	return &RunRound{validator: NewValidateInput(opts)}
}

// Validator exposes the input checks so callers can reject plaintext before
// asking for a key.
func (uc *RunRound) Validator() *ValidateInput { return uc.validator }

func (uc *RunRound) Execute(ctx context.Context, plaintext, key string) (domain.RoundResult, error) {
	round, err := uc.validator.Execute(ctx, plaintext, key)
	if err != nil {
		return domain.RoundResult{}, err
	}

	enc, err := transpose.Encode(round)
	if err != nil {
		return domain.RoundResult{Round: round}, err
	}

	dec, err := transpose.Decode(enc.Ciphertext, round)
	if err != nil {
		return domain.RoundResult{Round: round, Encoding: enc}, err
	}

	return domain.RoundResult{
		Round:    round,
		Encoding: enc,
		Decoding: dec,
	}, nil
}
