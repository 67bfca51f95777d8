package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultWidth is the width of report separators.
const DefaultWidth = 80

// PrintHeader writes a title framed by separator lines
func PrintHeader(w io.Writer, title string, width int) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", width))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// PrintFooter writes a closing message framed by separator lines
func PrintFooter(w io.Writer, message string, width int) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", width))
	fmt.Fprintln(w, message)
	fmt.Fprintln(w, strings.Repeat("=", width)+"\n")
}

// BoxPrefix returns the box-drawing prefix for list items
func BoxPrefix(isLast bool) string {
	if isLast {
		return "└  "
	}
	return "│  "
}

// BoxDetailPrefix returns the prefix for detail lines under list items
func BoxDetailPrefix(isLast bool) string {
	if isLast {
		return "   "
	}
	return "│  "
}

// FormatMoney renders a major-unit amount with its currency code, e.g. "-3.50 GBP".
func FormatMoney(amount decimal.Decimal, scale int, currency string) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(int32(scale)), currency)
}
