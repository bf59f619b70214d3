package transpose

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

func mustKey(t *testing.T, s string) domain.Key {
	t.Helper()
	k, err := domain.ParseKey(s)
	if err != nil {
		t.Fatalf("ParseKey(%q): %v", s, err)
	}
	return k
}

func gridOf(rows ...string) domain.Grid {
	g := make(domain.Grid, len(rows))
	for i, r := range rows {
		g[i] = []rune(r)
	}
	return g
}

func TestEncode_HelloWorld(t *testing.T) {
	r := domain.NewRound("HELLOWORLD", mustKey(t, "312"), domain.Options{})
	if r.Dims != (domain.Dimensions{Columns: 3, Rows: 4, Pad: 2}) {
		t.Fatalf("unexpected dims %+v", r.Dims)
	}

	enc, err := Encode(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.Ciphertext != "LWLyHLODEORy" {
		t.Fatalf("expected LWLyHLODEORy, got %q", enc.Ciphertext)
	}

	want := gridOf("HEL", "LOW", "ORL", "Dyy")
	if diff := cmp.Diff(want, enc.Grid); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_HelloWorld(t *testing.T) {
	r := domain.NewRound("HELLOWORLD", mustKey(t, "312"), domain.Options{})

	dec, err := Decode("LWLyHLODEORy", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Plaintext != "HELLOWORLD" {
		t.Fatalf("expected HELLOWORLD, got %q", dec.Plaintext)
	}
	if dec.Padded != "HELLOWORLDyy" {
		t.Fatalf("expected padded text, got %q", dec.Padded)
	}
	if dec.Mismatch != nil {
		t.Fatalf("unexpected mismatch %+v", dec.Mismatch)
	}
	if diff := cmp.Diff([]string{"LWLy", "HLOD", "EORy"}, dec.Groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(gridOf("HEL", "LOW", "ORL", "Dyy"), dec.Grid); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_Permutations(t *testing.T) {
	texts := []string{
		"",
		"a",
		"HELLOWORLD",
		"attack at dawn!",
		"the quick brown fox jumps over the lazy dog",
		"yyy",
		"say yay",
		"ünïcödé ✓ text",
	}

	for n := 1; n <= 5; n++ {
		for _, key := range permutations(n) {
			for _, text := range texts {
				r := domain.NewRound(text, key, domain.Options{})
				enc, err := Encode(r)
				if err != nil {
					t.Fatalf("Encode(%q, %v): %v", text, key, err)
				}
				if got := len([]rune(enc.Ciphertext)); got != r.Dims.Cells() {
					t.Fatalf("Encode(%q, %v): ciphertext length %d, want %d", text, key, got, r.Dims.Cells())
				}
				dec, err := Decode(enc.Ciphertext, r)
				if err != nil {
					t.Fatalf("Decode(%q, %v): %v", enc.Ciphertext, key, err)
				}
				if dec.Plaintext != text {
					t.Fatalf("round trip %v: got %q want %q", key, dec.Plaintext, text)
				}
			}
		}
	}
}

func TestEncode_ColumnPermutation(t *testing.T) {
	r := domain.NewRound("abcdefghij", mustKey(t, "2413"), domain.Options{})
	enc, err := Encode(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want string
	for _, d := range r.Key {
		want += string(enc.Grid.Column(d - 1))
	}
	if enc.Ciphertext != want {
		t.Fatalf("expected columns in key order %q, got %q", want, enc.Ciphertext)
	}
}

func TestDecode_NoPadStripsNothing(t *testing.T) {
	r := domain.NewRound("abcdef", mustKey(t, "21"), domain.Options{})
	if r.Dims.Pad != 0 {
		t.Fatalf("expected pad 0, got %d", r.Dims.Pad)
	}
	enc, err := Encode(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dec, err := Decode(enc.Ciphertext, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Plaintext != "abcdef" || dec.Padded != "abcdef" {
		t.Fatalf("expected nothing stripped, got plain=%q padded=%q", dec.Plaintext, dec.Padded)
	}
}

func TestDecode_StripsByPositionNotContent(t *testing.T) {
	r := domain.NewRound("holy", mustKey(t, "312"), domain.Options{})
	enc, err := Encode(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dec, err := Decode(enc.Ciphertext, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Padded != "holyyy" {
		t.Fatalf("expected padded holyyy, got %q", dec.Padded)
	}
	if dec.Plaintext != "holy" {
		t.Fatalf("expected trailing y preserved, got %q", dec.Plaintext)
	}
}

func TestDecode_ShortCiphertextUsesFiller(t *testing.T) {
	r := domain.NewRound("HELLOWORLD", mustKey(t, "312"), domain.Options{})

	dec, err := Decode("LWLyHL", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Mismatch == nil || *dec.Mismatch != (domain.LengthMismatch{Expected: 12, Got: 6}) {
		t.Fatalf("expected mismatch 12/6, got %+v", dec.Mismatch)
	}
	if diff := cmp.Diff([]string{"LWLy", "HL", ""}, dec.Groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if dec.Padded != "HyLLyWyyLyyy" {
		t.Fatalf("unexpected padded text %q", dec.Padded)
	}
	if dec.Plaintext != "HyLLyWyyLy" {
		t.Fatalf("unexpected plaintext %q", dec.Plaintext)
	}
}

func TestDecode_LongCiphertextIgnoresExtra(t *testing.T) {
	r := domain.NewRound("HELLOWORLD", mustKey(t, "312"), domain.Options{})

	dec, err := Decode("LWLyHLODEORyEXTRA", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Mismatch == nil || dec.Mismatch.Got != 17 {
		t.Fatalf("expected mismatch with got=17, got %+v", dec.Mismatch)
	}
	if dec.Plaintext != "HELLOWORLD" {
		t.Fatalf("expected HELLOWORLD, got %q", dec.Plaintext)
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	r := domain.NewRound("abcd", domain.Key{1, 5}, domain.Options{})

	_, err := Encode(r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindOutOfRange) {
		t.Fatalf("expected KindOutOfRange, got %v", err)
	}
	var de *domain.DigitError
	if !errors.As(err, &de) || de.Digit != 5 {
		t.Fatalf("expected DigitError for 5, got %v", err)
	}

	if _, err := Decode("abcd", r); !domain.IsKind(err, domain.KindOutOfRange) {
		t.Fatalf("expected decode KindOutOfRange, got %v", err)
	}
}

func TestEncode_EmptyKey(t *testing.T) {
	_, err := Encode(domain.NewRound("abc", nil, domain.Options{}))
	if !errors.Is(err, domain.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestEncode_DuplicateDigits(t *testing.T) {
	r := domain.NewRound("abcd", mustKey(t, "11"), domain.Options{})
	enc, err := Encode(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.Ciphertext != "acac" {
		t.Fatalf("expected column 1 twice, got %q", enc.Ciphertext)
	}

	dec, err := Decode(enc.Ciphertext, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// column 2 is never written back and keeps the filler
	if dec.Plaintext != "aycy" {
		t.Fatalf("expected aycy, got %q", dec.Plaintext)
	}
}

func TestCustomFiller(t *testing.T) {
	r := domain.NewRound("abcd", mustKey(t, "312"), domain.Options{Filler: '_'})
	enc, err := Encode(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.Ciphertext != "c_adb_" {
		t.Fatalf("unexpected ciphertext %q", enc.Ciphertext)
	}
	dec, err := Decode(enc.Ciphertext, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Plaintext != "abcd" {
		t.Fatalf("expected abcd, got %q", dec.Plaintext)
	}
}

func permutations(n int) []domain.Key {
	base := make(domain.Key, n)
	for i := range base {
		base[i] = i + 1
	}

	var out []domain.Key
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			cp := make(domain.Key, n)
			copy(cp, base)
			out = append(out, cp)
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			rec(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	rec(0)
	return out
}
