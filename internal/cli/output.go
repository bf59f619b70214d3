package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cahanap/cj-s-table-cipher/internal/app/table"
	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

type roundJSON struct {
	Plaintext  string `json:"plaintext,omitempty"`
	Key        string `json:"key"`
	Columns    int    `json:"columns"`
	Rows       int    `json:"rows"`
	Pad        int    `json:"pad"`
	Ciphertext string `json:"ciphertext"`
	Decrypted  string `json:"decrypted"`

	EncryptionGrid   []string `json:"encryption_grid,omitempty"`
	DecryptionGroups []string `json:"decryption_groups"`
	DecryptionGrid   []string `json:"decryption_grid"`
	Warnings         []string `json:"warnings"`
}

func printRound(w io.Writer, res domain.RoundResult, format string, showTables bool) error {
	switch format {
	case domain.FormatJSON:
		payload := roundJSON{
			Plaintext:        res.Round.Plaintext,
			Key:              res.Round.Key.String(),
			Columns:          res.Round.Dims.Columns,
			Rows:             res.Round.Dims.Rows,
			Pad:              res.Round.Dims.Pad,
			Ciphertext:       res.Encoding.Ciphertext,
			Decrypted:        res.Decoding.Plaintext,
			EncryptionGrid:   gridRows(res.Encoding.Grid),
			DecryptionGroups: res.Decoding.Groups,
			DecryptionGrid:   gridRows(res.Decoding.Grid),
			Warnings:         warnings(res.Decoding),
		}
		return writeJSON(w, payload)
	case domain.FormatPretty, "":
		_, err := io.WriteString(w, table.Report(res, showTables))
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printDecryption(w io.Writer, ciphertext string, round domain.Round, dec domain.Decoding, format string, showTables bool) error {
	switch format {
	case domain.FormatJSON:
		payload := roundJSON{
			Key:              round.Key.String(),
			Columns:          round.Dims.Columns,
			Rows:             round.Dims.Rows,
			Pad:              round.Dims.Pad,
			Ciphertext:       ciphertext,
			Decrypted:        dec.Plaintext,
			DecryptionGroups: dec.Groups,
			DecryptionGrid:   gridRows(dec.Grid),
			Warnings:         warnings(dec),
		}
		return writeJSON(w, payload)
	case domain.FormatPretty, "":
		_, err := io.WriteString(w, table.DecryptReport(round, dec, showTables))
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func gridRows(g domain.Grid) []string {
	out := make([]string, 0, g.Rows())
	for _, row := range g {
		out = append(out, string(row))
	}
	return out
}

func warnings(dec domain.Decoding) []string {
	out := []string{}
	if dec.Mismatch != nil {
		out = append(out, dec.Mismatch.String())
	}
	return out
}
