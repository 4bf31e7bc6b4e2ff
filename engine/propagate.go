package engine

import (
	"log"

	"github.com/Nusri7/sopcalc/engine/dataset"
	"github.com/Nusri7/sopcalc/engine/numeric"
)

// EditCell writes new display text into a cell and pushes the edit into
// every currently-Baseline metric whose recorded provenance matches the
// edited (statement, line item, column). Manual metrics are never
// rewritten here; their entries re-resolve on the next evaluation.
func (w *Workspace) EditCell(rowID, column, text string) bool {
	item := w.doc.Find(rowID)
	if item == nil {
		return false
	}

	// Manual-ness is judged on the pre-edit snapshot.
	manual := w.manualNow()

	actual := column
	if resolved, ok := dataset.ResolveColumn(item, column); ok {
		actual = resolved
	}
	if !w.doc.SetCell(rowID, actual, text) {
		return false
	}
	for key, row := range w.baseline {
		if manual[key] {
			continue
		}
		if equalFold(row.Statement, item.Statement) &&
			equalFold(row.SourceLine, item.Label) &&
			equalFold(row.Column, actual) {
			row.Value = text
			w.baseline[key] = row
		}
	}
	return true
}

// DeleteLineItem removes a row; Baseline metrics whose provenance pointed
// at it reset to "-". Manual metrics are untouched; their formulas
// simply fail to resolve the reference on the next evaluation.
func (w *Workspace) DeleteLineItem(rowID string) bool {
	manual := w.manualNow()

	item := w.doc.Remove(rowID)
	if item == nil {
		return false
	}
	for key, row := range w.baseline {
		if manual[key] {
			continue
		}
		if equalFold(row.Statement, item.Statement) && equalFold(row.SourceLine, item.Label) {
			row.Value = EmptyValue
			w.baseline[key] = row
		}
	}
	return true
}

// RemoveColumn drops a value column and defensively invalidates every
// reference to it: Baseline rows sourced from it lose their value, and
// entry operands naming it lose the column hint. No recomputation happens
// here; the next Summary() read re-evaluates.
func (w *Workspace) RemoveColumn(name string) bool {
	if !w.doc.DropColumn(name) {
		return false
	}

	for key, row := range w.baseline {
		if equalFold(row.Column, name) {
			row.Column = ""
			row.Value = EmptyValue
			w.baseline[key] = row
		}
	}

	for key, entries := range w.entries {
		for i := range entries {
			if equalFold(entries[i].Base.Column, name) {
				entries[i].Base.Column = ""
			}
			for j := range entries[i].Steps {
				if equalFold(entries[i].Steps[j].Operand.Column, name) {
					entries[i].Steps[j].Operand.Column = ""
				}
			}
		}
		w.entries[key] = entries
	}
	return true
}

// ScaleStatement multiplies every amount cell of a statement by 1000,
// skipping percentage cells. Applied at most once per statement per
// loaded document. Returns how many cells changed.
func (w *Workspace) ScaleStatement(statement string) int {
	key := dataset.Normalize(statement)
	if w.scaled[key] {
		log.Printf("✓ %s already scaled, skipping", statement)
		return 0
	}
	w.scaled[key] = true

	changed := 0
	for _, item := range w.doc.Items {
		if !equalFold(item.Statement, statement) {
			continue
		}
		for _, column := range item.ValueKeys() {
			if next, applied := numeric.ScaleCell(item.Values[column]); applied {
				item.Values[column] = next
				changed++
			}
		}
	}
	return changed
}

// AbsStatement converts every amount cell of a statement to its absolute
// value. Idempotent cell by cell. Returns how many cells changed.
func (w *Workspace) AbsStatement(statement string) int {
	changed := 0
	for _, item := range w.doc.Items {
		if !equalFold(item.Statement, statement) {
			continue
		}
		for _, column := range item.ValueKeys() {
			if next, applied := numeric.AbsCell(item.Values[column]); applied {
				item.Values[column] = next
				changed++
			}
		}
	}
	return changed
}
