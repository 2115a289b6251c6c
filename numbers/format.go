package numbers

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fixed formats x with exactly digits places after the decimal point,
// rounding half-to-even like the runtime's own float printing.
func Fixed(x float64, digits int) string {
	return strconv.FormatFloat(x, 'f', digits, 64)
}

// Scientific formats x in exponent notation with digits places of
// mantissa precision.
func Scientific(x float64, digits int) string {
	return strconv.FormatFloat(x, 'e', digits, 64)
}

// Percent formats the ratio x as a percentage with digits places, so
// Percent(0.1234, 1) is "12.3%".
func Percent(x float64, digits int) string {
	return strconv.FormatFloat(x*100, 'f', digits, 64) + "%"
}

// Grouped renders n with the thousands separators of the given locale.
func Grouped(n int64, tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}

// GroupedFloat renders x with locale thousands separators and digits
// places after the decimal point.
func GroupedFloat(x float64, digits int, tag language.Tag) string {
	verb := "%." + strconv.Itoa(digits) + "f"
	return message.NewPrinter(tag).Sprintf(verb, x)
}

// Comma renders n with comma separators, without consulting a locale.
func Comma(n int64) string {
	return humanize.Comma(n)
}

// Ordinal renders n as "1st", "2nd", "3rd", ...
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

// ByteSize renders a byte count in SI units, e.g. "1.0 MB".
func ByteSize(n uint64) string {
	return humanize.Bytes(n)
}
