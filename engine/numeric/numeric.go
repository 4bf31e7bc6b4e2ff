// Package numeric normalizes human-formatted statement values.
// Extracted cells arrive as display text ("1,234.50", "(500)", "—") and
// must round-trip between that text and decimal amounts.
package numeric

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// minusGlyphs maps the unicode minus/dash variants that show up in
// extracted statements to an ASCII minus.
var minusGlyphs = strings.NewReplacer(
	"−", "-", // minus sign
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
)

var (
	separatorRegex  = regexp.MustCompile(`[,\s\x{00a0}]`)
	nonNumericRegex = regexp.MustCompile(`[^0-9.\-]`)
	parenRegex      = regexp.MustCompile(`^\((.*)\)$`)
)

// Parse converts display text into a decimal amount. Parenthesized values
// are negative, thousands separators and stray currency symbols are
// stripped. Returns ok=false when nothing numeric remains.
func Parse(text string) (decimal.Decimal, bool) {
	cleaned := minusGlyphs.Replace(strings.TrimSpace(text))
	cleaned = separatorRegex.ReplaceAllString(cleaned, "")

	if m := parenRegex.FindStringSubmatch(cleaned); m != nil {
		cleaned = "-" + m[1]
	}

	cleaned = nonNumericRegex.ReplaceAllString(cleaned, "")

	switch cleaned {
	case "", "-", ".", "-.":
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return amount, true
}

// fractionDigits caps how many decimal places Format renders.
const fractionDigits = 10

// Format renders an amount as display text: comma-grouped integer part,
// at most 10 fractional digits, trailing zero fraction trimmed.
func Format(amount decimal.Decimal) string {
	rendered := amount.Round(fractionDigits).String()

	negative := strings.HasPrefix(rendered, "-")
	rendered = strings.TrimPrefix(rendered, "-")

	intPart, fracPart, hasFrac := strings.Cut(rendered, ".")

	grouped := groupThousands(intPart)
	if hasFrac {
		fracPart = strings.TrimRight(fracPart, "0")
	}
	if fracPart != "" {
		grouped += "." + fracPart
	}
	if negative {
		grouped = "-" + grouped
	}
	return grouped
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var builder strings.Builder
	builder.Grow(len(digits) + len(digits)/3)

	lead := len(digits) % 3
	if lead > 0 {
		builder.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(digits[i : i+3])
	}
	return builder.String()
}
