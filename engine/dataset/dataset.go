// Package dataset holds the extracted line items for one loaded document
// and the lookup primitives the resolver builds on.
package dataset

import (
	"sort"
	"strings"
)

// LineItem is one extracted row of a financial statement. Values maps a
// reporting-period column name to the raw display text of that cell.
// Multiple line items may share a (statement, label) pair.
type LineItem struct {
	RowID          string            `json:"row_id"`
	Statement      string            `json:"statement"`
	Label          string            `json:"line_item"`
	Classification string            `json:"classification,omitempty"`
	Values         map[string]string `json:"values"`
}

// Document is the in-memory snapshot of one extraction run: the line
// items, the ordered value columns, and the per-statement default column
// supplied by the extraction step. Exactly one logical writer mutates it.
type Document struct {
	Items        []*LineItem       `json:"line_items"`
	Columns      []string          `json:"columns"`
	LatestColumn map[string]string `json:"latest_columns,omitempty"`
}

// Normalize trims and lowercases a name for index/compare purposes.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Key builds the line-item index key for a (statement, label) pair.
func Key(statement, label string) string {
	return Normalize(statement) + "||" + Normalize(label)
}

// Index maps every (statement, label) key to its line items, insertion
// order preserved. Rebuilt on demand; the document is the source of truth.
func (d *Document) Index() map[string][]*LineItem {
	index := make(map[string][]*LineItem, len(d.Items))
	for _, item := range d.Items {
		k := Key(item.Statement, item.Label)
		index[k] = append(index[k], item)
	}
	return index
}

// Lookup returns all line items matching the (statement, label) pair in
// insertion order.
func (d *Document) Lookup(statement, label string) []*LineItem {
	k := Key(statement, label)
	var matches []*LineItem
	for _, item := range d.Items {
		if Key(item.Statement, item.Label) == k {
			matches = append(matches, item)
		}
	}
	return matches
}

// Find returns the line item with the given row id, or nil.
func (d *Document) Find(rowID string) *LineItem {
	for _, item := range d.Items {
		if item.RowID == rowID {
			return item
		}
	}
	return nil
}

// ResolveColumn matches a requested column name against the item's own
// value keys by trimmed case-insensitive equality. Never partial-matches.
func ResolveColumn(item *LineItem, requested string) (string, bool) {
	want := Normalize(requested)
	if want == "" {
		return "", false
	}
	for _, key := range sortedValueKeys(item) {
		if Normalize(key) == want {
			return key, true
		}
	}
	return "", false
}

// sortedValueKeys returns the item's value keys in a stable order.
func sortedValueKeys(item *LineItem) []string {
	keys := make([]string, 0, len(item.Values))
	for key := range item.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ValueKeys exposes the stable key order for callers walking a row's cells.
func (li *LineItem) ValueKeys() []string {
	return sortedValueKeys(li)
}

// LatestColumnFor returns the default/latest column recorded for a
// statement, if any.
func (d *Document) LatestColumnFor(statement string) (string, bool) {
	if d.LatestColumn == nil {
		return "", false
	}
	for name, column := range d.LatestColumn {
		if Normalize(name) == Normalize(statement) {
			return column, true
		}
	}
	return "", false
}

// HasColumn reports whether a declared value column matches the name.
func (d *Document) HasColumn(name string) bool {
	want := Normalize(name)
	for _, column := range d.Columns {
		if Normalize(column) == want {
			return true
		}
	}
	return false
}

// SetCell writes raw display text into a row's cell. The column is
// matched case-insensitively against the row's existing keys so an edit
// never forks "Q1" and "q1" into two cells.
func (d *Document) SetCell(rowID, column, text string) bool {
	item := d.Find(rowID)
	if item == nil {
		return false
	}
	if item.Values == nil {
		item.Values = map[string]string{}
	}
	if actual, ok := ResolveColumn(item, column); ok {
		column = actual
	}
	item.Values[column] = text
	return true
}

// Remove deletes a line item by row id and returns it.
func (d *Document) Remove(rowID string) *LineItem {
	for i, item := range d.Items {
		if item.RowID == rowID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return item
		}
	}
	return nil
}

// DropColumn removes a value column from the document: from the declared
// column list, from every row's cells, and from the latest-column map.
// Every reference to the column becomes invalid.
func (d *Document) DropColumn(name string) bool {
	want := Normalize(name)
	found := false

	kept := d.Columns[:0]
	for _, column := range d.Columns {
		if Normalize(column) == want {
			found = true
			continue
		}
		kept = append(kept, column)
	}
	d.Columns = kept

	for _, item := range d.Items {
		if actual, ok := ResolveColumn(item, name); ok {
			delete(item.Values, actual)
			found = true
		}
	}

	for statement, column := range d.LatestColumn {
		if Normalize(column) == want {
			delete(d.LatestColumn, statement)
		}
	}

	return found
}
