// Package table renders cipher grids as bordered text tables.
package table

import (
	"strconv"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
)

// Render lays out g with 1-based column headers, 1-based row labels and a
// horizontal rule under the header and under every row.
//
//	     1   2   3
//	   -------------
//	| 1 | H | E | L |
//	   -------------
func Render(g domain.Grid) string {
	cols := g.Cols()

	var b strings.Builder
	b.WriteString("   ")
	for c := 0; c < cols; c++ {
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(c + 1))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	writeRule(&b, cols)

	for r, row := range g {
		b.WriteString("| ")
		b.WriteString(strconv.Itoa(r + 1))
		b.WriteString(" ")
		for _, ch := range row {
			b.WriteString("| ")
			b.WriteRune(ch)
			b.WriteString(" ")
		}
		b.WriteString("|\n")
		writeRule(&b, cols)
	}
	return b.String()
}

// RenderGroups shows the per-column ciphertext split used while decoding.
func RenderGroups(groups []string) string {
	var b strings.Builder
	for _, g := range groups {
		b.WriteString("| ")
		b.WriteString(g)
		b.WriteString(" |  ")
	}
	b.WriteString("\n")
	return b.String()
}

func writeRule(b *strings.Builder, cols int) {
	b.WriteString("   ")
	b.WriteString(strings.Repeat("----", cols))
	b.WriteString("-\n")
}
