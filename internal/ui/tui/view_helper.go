package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/cahanap/cj-s-table-cipher/internal/app/table"
	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderResult shows one round. Texts are clamped to the terminal width;
// tables are placed side by side.
func renderResult(t Theme, res domain.RoundResult, showTables bool, width int) string {
	limit := width - 30
	if limit < 20 {
		limit = 80
	}

	d := res.Round.Dims
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d columns × %d rows (pad %d)\n\n",
		t.Label.Render("Grid:"), d.Columns, d.Rows, d.Pad)
	fmt.Fprintf(&b, "%s %s\n", t.Label.Render("Encrypted Text:"), t.Value.Render(clampString(res.Encoding.Ciphertext, limit)))
	if m := res.Decoding.Mismatch; m != nil {
		b.WriteString(t.Warning.Render("Warning: "+m.String()) + "\n")
	}
	fmt.Fprintf(&b, "%s %s\n", t.Label.Render("Decrypted Text:"), t.Value.Render(clampString(res.Decoding.Plaintext, limit)))

	if !showTables {
		return b.String()
	}

	enc := t.Label.Render("Encryption Table") + "\n" + table.Render(res.Encoding.Grid)
	dec := t.Label.Render("Decryption Table") + "\n" +
		table.RenderGroups(res.Decoding.Groups) + table.Render(res.Decoding.Grid)

	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, enc, "    ", dec))
	return b.String()
}
