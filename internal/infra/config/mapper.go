package config

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	tc := y.TableCipher

	if tc.Cipher.Filler != "" {
		r, err := parseFiller(tc.Cipher.Filler)
		if err != nil {
			return domain.DefaultConfig(), invalidField(path, "tablecipher.cipher.filler", err.Error())
		}
		cfg.Cipher.Filler = r
	}
	if tc.Cipher.RequirePermutation != nil {
		cfg.Cipher.RequirePermutation = *tc.Cipher.RequirePermutation
	}

	if tok := strings.TrimSpace(tc.Session.ExitToken); tok != "" {
		cfg.Session.ExitToken = tok
	}
	if tc.Session.ShowTables != nil {
		cfg.Session.ShowTables = *tc.Session.ShowTables
	}
	if tc.Session.Banner != nil {
		cfg.Session.Banner = *tc.Session.Banner
	}

	if f := strings.TrimSpace(tc.Output.Format); f != "" {
		format, err := ParseFormat(f)
		if err != nil {
			return domain.DefaultConfig(), invalidField(path, "tablecipher.output.format", err.Error())
		}
		cfg.Output.Format = format
	}

	return cfg, nil
}

// ParseFormat normalizes an output format name.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	switch f {
	case domain.FormatPretty, domain.FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json)", s)
	}
}

func parseFiller(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("filler %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r >= '0' && r <= '9' {
		return 0, fmt.Errorf("filler %q must not be a digit", s)
	}
	if unicode.IsControl(r) {
		return 0, fmt.Errorf("filler %q must be printable", s)
	}
	return r, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
