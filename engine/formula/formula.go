// Package formula evaluates user-authored manual calculation entries: a
// base value plus an ordered chain of arithmetic steps, producing a total
// and a readable trail of how it was computed.
package formula

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Nusri7/sopcalc/engine/numeric"
	"github.com/Nusri7/sopcalc/engine/resolve"
)

// Operator is one arithmetic step operator.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// ParseOperator accepts the ASCII operators and the display glyphs users
// paste from exported sheets.
func ParseOperator(s string) (Operator, bool) {
	switch strings.TrimSpace(s) {
	case "+":
		return OpAdd, true
	case "-", "−", "–", "—":
		return OpSubtract, true
	case "*", "x", "X", "×":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	}
	return "", false
}

// Glyph renders the operator the way the audit trail displays it.
func (op Operator) Glyph() string {
	switch op {
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return "+"
}

// apply folds one operand into the running total. Division by zero fails.
func (op Operator) apply(total, operand decimal.Decimal) (decimal.Decimal, bool) {
	switch op {
	case OpAdd:
		return total.Add(operand), true
	case OpSubtract:
		return total.Sub(operand), true
	case OpMultiply:
		return total.Mul(operand), true
	case OpDivide:
		if operand.IsZero() {
			return decimal.Decimal{}, false
		}
		return total.Div(operand), true
	}
	return decimal.Decimal{}, false
}

// Operand is either a literal constant or a line-item reference. A blank
// LineItem means constant. Unset reference fields default to the
// enclosing entry's base statement/column at evaluation time.
type Operand struct {
	Constant  string `json:"constant,omitempty"`
	Statement string `json:"statement,omitempty"`
	LineItem  string `json:"line_item,omitempty"`
	Column    string `json:"column,omitempty"`
}

// IsConstant reports whether the operand carries a literal value.
func (o Operand) IsConstant() bool {
	return strings.TrimSpace(o.LineItem) == ""
}

// Step is one operation in an entry's chain.
type Step struct {
	Op      Operator `json:"operator"`
	Operand Operand  `json:"operand"`
}

// Entry is one manual calculation belonging to a metric.
type Entry struct {
	ID     string  `json:"id"`
	Metric string  `json:"metric"`
	Base   Operand `json:"base"`
	Steps  []Step  `json:"steps,omitempty"`
}

// Result is a successful evaluation: the total, the distinct resolved
// column names in first-touch order, and the audit trail text.
type Result struct {
	Total   decimal.Decimal
	Columns []string
	Trail   string
}

// Evaluator evaluates entries against the current document snapshot.
// Nothing is cached; every call re-resolves every reference.
type Evaluator struct {
	Resolver *resolve.Resolver

	// ZeroBaseFallback keeps the legacy behavior of starting at 0 when
	// the base reference does not resolve, instead of failing the entry.
	// Off, an unresolvable base invalidates the entry.
	ZeroBaseFallback bool
}

// Evaluate computes one entry left-to-right with no operator precedence.
// Any unusable operand, or a division by zero, invalidates the whole
// entry (ok=false).
func (e *Evaluator) Evaluate(entry Entry) (Result, bool) {
	var (
		parts   []string
		columns []string
		touched = map[string]bool{}
	)
	touch := func(column string) {
		key := strings.ToLower(strings.TrimSpace(column))
		if touched[key] {
			return
		}
		touched[key] = true
		columns = append(columns, column)
	}

	var total decimal.Decimal

	if entry.Base.IsConstant() {
		value, ok := numeric.Parse(entry.Base.Constant)
		if !ok {
			return Result{}, false
		}
		total = value
		parts = append(parts, "Manual value "+numeric.Format(value))
	} else {
		res, ok := e.Resolver.Resolve(entry.Base.Statement, entry.Base.LineItem, entry.Base.Column)
		switch {
		case ok:
			total = res.Value
			touch(res.Column)
			parts = append(parts, describe(res))
		case e.ZeroBaseFallback:
			total = decimal.Zero
			parts = append(parts, fmt.Sprintf("Start at 0 for %s [%s]", entry.Base.LineItem, entry.Base.Statement))
		default:
			return Result{}, false
		}
	}

	for _, step := range entry.Steps {
		op, ok := ParseOperator(string(step.Op))
		if !ok {
			return Result{}, false
		}

		var (
			value decimal.Decimal
			desc  string
		)
		if step.Operand.IsConstant() {
			value, ok = numeric.Parse(step.Operand.Constant)
			if !ok {
				return Result{}, false
			}
			desc = numeric.Format(value)
		} else {
			statement := step.Operand.Statement
			if strings.TrimSpace(statement) == "" {
				statement = entry.Base.Statement
			}
			column := step.Operand.Column
			if strings.TrimSpace(column) == "" {
				column = entry.Base.Column
			}

			res, resolved := e.Resolver.Resolve(statement, step.Operand.LineItem, column)
			if !resolved {
				return Result{}, false
			}
			value = res.Value
			touch(res.Column)
			desc = describe(res)
		}

		total, ok = op.apply(total, value)
		if !ok {
			return Result{}, false
		}
		parts = append(parts, op.Glyph()+" "+desc)
	}

	return Result{Total: total, Columns: columns, Trail: strings.Join(parts, ", ")}, true
}

func describe(res resolve.Resolution) string {
	return fmt.Sprintf("%s [%s] = %s", res.LineItem, res.Statement, numeric.Format(res.Value))
}
