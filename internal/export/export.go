// Package export writes product lists in the fixed-width layout that is
// pasted back later as the previous list.
package export

import (
	"strings"
	"unicode/utf8"

	"github.com/Houeta/label-flow/internal/models"
)

const (
	codeWidth = 20
	nameWidth = 45
	zeroCents = ",00"
)

// FormatLine renders one product as "<code><name><price>,00" with the code
// and name columns padded to fixed widths.
func FormatLine(p models.Product) string {
	var b strings.Builder
	b.WriteString(pad(p.Code, codeWidth))
	b.WriteString(pad(p.Name, nameWidth))
	b.WriteString(p.Price)
	b.WriteString(zeroCents)

	return b.String()
}

// FormatList renders every product on its own line.
func FormatList(products []models.Product) string {
	var b strings.Builder
	for _, p := range products {
		b.WriteString(FormatLine(p))
		b.WriteByte('\n')
	}

	return b.String()
}

// pad right-pads s with spaces to width runes. An overflowing column still
// gets one space so the columns stay separable.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}

	return s + strings.Repeat(" ", width-n)
}
