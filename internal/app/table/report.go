package table

import (
	"fmt"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

const (
	encryptionHeader = "====== Encryption Table ======"
	decryptionHeader = "====== Decryption Table ======"
)

// Report renders the transcript of a full round: grid size, the encryption
// table, the ciphertext, the decryption split and table, and the recovered
// plaintext. Tables are skipped when showTables is false.
func Report(res domain.RoundResult, showTables bool) string {
	var b strings.Builder

	d := res.Round.Dims
	fmt.Fprintf(&b, "\nNumber of columns: %d\n", d.Columns)
	fmt.Fprintf(&b, "Number of rows: %d\n", d.Rows)

	if showTables {
		b.WriteString("\n" + encryptionHeader + "\n")
		b.WriteString(Render(res.Encoding.Grid))
	}
	fmt.Fprintf(&b, "\nEncrypted Text: %s\n", res.Encoding.Ciphertext)

	writeDecoding(&b, res.Decoding, showTables)
	return b.String()
}

// DecryptReport renders a stand-alone decryption.
func DecryptReport(round domain.Round, dec domain.Decoding, showTables bool) string {
	var b strings.Builder

	d := round.Dims
	fmt.Fprintf(&b, "\nNumber of columns: %d\n", d.Columns)
	fmt.Fprintf(&b, "Number of rows: %d\n", d.Rows)

	writeDecoding(&b, dec, showTables)
	return b.String()
}

func writeDecoding(b *strings.Builder, dec domain.Decoding, showTables bool) {
	if dec.Mismatch != nil {
		fmt.Fprintf(b, "Warning: %s\n", dec.Mismatch.String())
	}
	if showTables {
		b.WriteString("\n" + decryptionHeader + "\n")
		b.WriteString(RenderGroups(dec.Groups))
		b.WriteString(Render(dec.Grid))
	}
	fmt.Fprintf(b, "\nDecrypted Text: %s\n", dec.Plaintext)
}
