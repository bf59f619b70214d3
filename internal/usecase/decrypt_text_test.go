package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

func TestDecryptText_WithPad(t *testing.T) {
	uc := NewDecryptText(domain.Options{})

	round, dec, err := uc.Execute(context.Background(), "LWLyHLODEORy", "312", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if round.Dims != (domain.Dimensions{Columns: 3, Rows: 4, Pad: 2}) {
		t.Fatalf("unexpected dims %+v", round.Dims)
	}
	if dec.Plaintext != "HELLOWORLD" || round.Plaintext != "HELLOWORLD" {
		t.Fatalf("expected HELLOWORLD, got %q", dec.Plaintext)
	}
}

func TestDecryptText_WithoutPadKeepsFiller(t *testing.T) {
	uc := NewDecryptText(domain.Options{})

	_, dec, err := uc.Execute(context.Background(), "LWLyHLODEORy", "312", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Plaintext != "HELLOWORLDyy" {
		t.Fatalf("expected filler kept, got %q", dec.Plaintext)
	}
}

func TestDecryptText_RaggedLengthWarns(t *testing.T) {
	uc := NewDecryptText(domain.Options{})

	round, dec, err := uc.Execute(context.Background(), "LWLyHLODEOR", "312", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if round.Dims.Rows != 4 {
		t.Fatalf("expected 4 rows, got %d", round.Dims.Rows)
	}
	if dec.Mismatch == nil || dec.Mismatch.Expected != 12 || dec.Mismatch.Got != 11 {
		t.Fatalf("expected mismatch 12/11, got %+v", dec.Mismatch)
	}
}

func TestDecryptText_InvalidPad(t *testing.T) {
	uc := NewDecryptText(domain.Options{})

	for _, pad := range []int{-1, 3, 9} {
		_, _, err := uc.Execute(context.Background(), "LWLyHLODEORy", "312", pad)
		if !errors.Is(err, domain.ErrInvalidPad) {
			t.Errorf("pad %d: expected ErrInvalidPad, got %v", pad, err)
		}
	}
}

func TestDecryptText_InvalidKey(t *testing.T) {
	uc := NewDecryptText(domain.Options{})

	_, _, err := uc.Execute(context.Background(), "abc", "0", 0)
	if !errors.Is(err, domain.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}
