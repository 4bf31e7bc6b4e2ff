package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Nusri7/sopcalc/engine/dataset"
	"github.com/Nusri7/sopcalc/engine/numeric"
)

// MultipleColumns is the column shown when a manual metric touched more
// or fewer than exactly one column.
const MultipleColumns = "Multiple"

// EmptyValue is the display value of a metric with nothing behind it.
const EmptyValue = "-"

// Summary derives the merged metric table in registry order. Metrics with
// at least one successfully evaluating manual entry come out Manual; all
// others pass their baseline row through. Recomputed from scratch on
// every call.
func (w *Workspace) Summary() []Row {
	ev := w.evaluator()
	names := w.registry.Names()
	rows := make([]Row, 0, len(names))

	for _, name := range names {
		key := dataset.Normalize(name)
		base, hasBase := w.baseline[key]
		if !hasBase {
			base = Row{Metric: name, Value: EmptyValue}
		}

		entries := w.entries[key]
		if len(entries) == 0 {
			rows = append(rows, base)
			continue
		}

		var (
			sum     = decimal.Zero
			trails  []string
			columns []string
			touched = map[string]bool{}
		)
		for _, entry := range entries {
			result, ok := ev.Evaluate(entry)
			if !ok {
				// Failed entries stay attached but contribute nothing.
				continue
			}
			sum = sum.Add(result.Total)
			trails = append(trails, result.Trail)
			for _, column := range result.Columns {
				ck := dataset.Normalize(column)
				if touched[ck] {
					continue
				}
				touched[ck] = true
				columns = append(columns, column)
			}
		}

		if len(trails) == 0 {
			// Every entry failed: the metric reverts to baseline.
			rows = append(rows, base)
			continue
		}

		column := MultipleColumns
		if len(columns) == 1 {
			column = columns[0]
		}
		rows = append(rows, Row{
			Metric:     base.Metric,
			Value:      numeric.Format(sum),
			Statement:  base.Statement,
			Column:     column,
			SourceLine: strings.Join(trails, "; "),
			Manual:     true,
		})
	}

	return rows
}

// manualNow reports which metrics currently have at least one
// successfully evaluating entry. Propagation uses it to leave manual
// metrics alone.
func (w *Workspace) manualNow() map[string]bool {
	ev := w.evaluator()
	manual := map[string]bool{}
	for key, entries := range w.entries {
		for _, entry := range entries {
			if _, ok := ev.Evaluate(entry); ok {
				manual[key] = true
				break
			}
		}
	}
	return manual
}
