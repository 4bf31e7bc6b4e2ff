// Package resolve finds the numeric value behind a (statement, line item,
// column hint) reference.
//
// Resolution is a prioritized rule chain: an explicit column hint always
// wins, the statement's latest/default column is the fallback target, the
// declared value columns come next in declared order, and any populated
// cell on a matching row is an acceptable last resort. The first candidate
// whose cell parses wins; a reference only fails when no cell parses.
package resolve

import (
	"github.com/shopspring/decimal"

	"github.com/Nusri7/sopcalc/engine/dataset"
	"github.com/Nusri7/sopcalc/engine/numeric"
)

// Resolution records a resolved value together with its provenance.
type Resolution struct {
	Value     decimal.Decimal
	Display   string
	Column    string
	Statement string
	LineItem  string
}

// Resolver resolves references against the current document snapshot.
// It holds no state of its own; every call re-reads the document.
type Resolver struct {
	Doc *dataset.Document
}

// candidate is one (row, column) cell the chain may read.
type candidate struct {
	item   *dataset.LineItem
	column string
}

// request carries one resolution attempt through the strategy chain.
type request struct {
	statement string
	hint      string
	items     []*dataset.LineItem
}

// strategy produces the candidate cells for one priority tier.
type strategy func(r *Resolver, req request) []candidate

// chain is the resolver's priority order. Appending here is the only way
// to widen resolution.
var chain = []strategy{
	hintedColumn,
	latestColumn,
	declaredColumns,
	anyPopulatedField,
}

// Resolve walks the strategy chain and returns the first candidate cell
// that parses as a number, with provenance. ok=false when nothing parses.
func (r *Resolver) Resolve(statement, lineItem, columnHint string) (Resolution, bool) {
	req := request{
		statement: statement,
		hint:      columnHint,
		items:     r.Doc.Lookup(statement, lineItem),
	}
	if len(req.items) == 0 {
		return Resolution{}, false
	}

	seen := map[string]bool{}
	for _, tier := range chain {
		for _, c := range tier(r, req) {
			key := c.item.RowID + "||" + dataset.Normalize(c.column)
			if seen[key] {
				continue
			}
			seen[key] = true

			raw := c.item.Values[c.column]
			value, ok := numeric.Parse(raw)
			if !ok {
				continue
			}
			return Resolution{
				Value:     value,
				Display:   raw,
				Column:    c.column,
				Statement: c.item.Statement,
				LineItem:  c.item.Label,
			}, true
		}
	}

	return Resolution{}, false
}

// hintedColumn tries the explicit column hint against every matching row.
func hintedColumn(_ *Resolver, req request) []candidate {
	return columnOnRows(req.items, req.hint)
}

// latestColumn tries the statement's default/latest column metadata.
func latestColumn(r *Resolver, req request) []candidate {
	column, ok := r.Doc.LatestColumnFor(req.statement)
	if !ok {
		return nil
	}
	return columnOnRows(req.items, column)
}

// declaredColumns tries every declared value column in declared order.
func declaredColumns(r *Resolver, req request) []candidate {
	var out []candidate
	for _, column := range r.Doc.Columns {
		out = append(out, columnOnRows(req.items, column)...)
	}
	return out
}

// anyPopulatedField tries every remaining cell on each matching row.
// Identity and classification live outside Values, so every key is a
// column value by construction.
func anyPopulatedField(_ *Resolver, req request) []candidate {
	var out []candidate
	for _, item := range req.items {
		for _, key := range item.ValueKeys() {
			out = append(out, candidate{item: item, column: key})
		}
	}
	return out
}

func columnOnRows(items []*dataset.LineItem, requested string) []candidate {
	if requested == "" {
		return nil
	}
	var out []candidate
	for _, item := range items {
		if actual, ok := dataset.ResolveColumn(item, requested); ok {
			out = append(out, candidate{item: item, column: actual})
		}
	}
	return out
}
