package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// percentHints mark cells that hold ratios rather than amounts; statement
// scaling must leave those alone.
var percentHints = []string{"%", "percent", "pct"}

// IsPercent reports whether a cell looks like a percentage value.
func IsPercent(text string) bool {
	lower := strings.ToLower(text)
	for _, hint := range percentHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// ScaleCell multiplies a cell by 1000 (statements reported in thousands).
// Percentage cells and cells that do not parse are returned unchanged
// with applied=false.
func ScaleCell(text string) (string, bool) {
	if IsPercent(text) {
		return text, false
	}
	amount, ok := Parse(text)
	if !ok {
		return text, false
	}
	return Format(amount.Mul(thousand)), true
}

// AbsCell rewrites a cell as its absolute value. A cell already holding a
// non-negative amount is returned unchanged, which makes the transform
// idempotent.
func AbsCell(text string) (string, bool) {
	amount, ok := Parse(text)
	if !ok {
		return text, false
	}
	if amount.Sign() >= 0 {
		return text, false
	}
	return Format(amount.Abs()), true
}
