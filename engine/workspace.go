// Package engine ties the derivation pieces together: a Workspace owns
// one loaded document, its baseline metric rows, and the user's manual
// calculation entries, and derives the merged summary table on demand.
package engine

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Nusri7/sopcalc/engine/dataset"
	"github.com/Nusri7/sopcalc/engine/formula"
	"github.com/Nusri7/sopcalc/engine/metrics"
	"github.com/Nusri7/sopcalc/engine/resolve"
)

// Row is one line of the summary table handed to the export/display side.
// For Baseline rows SourceLine is the source line-item label; for Manual
// rows it is the joined formula trail.
type Row struct {
	Metric     string `json:"metric"`
	Value      string `json:"value"`
	Statement  string `json:"statement,omitempty"`
	Column     string `json:"column,omitempty"`
	SourceLine string `json:"source_line,omitempty"`
	Manual     bool   `json:"manual"`
}

// Workspace is the single mutable state of one review session. One
// logical writer at a time; everything derived is recomputed on read.
type Workspace struct {
	doc      *dataset.Document
	registry *metrics.Registry
	baseline map[string]Row
	entries  map[string][]formula.Entry
	scaled   map[string]bool

	// ZeroBaseFallback is threaded into every evaluation; see
	// formula.Evaluator.
	ZeroBaseFallback bool
}

// New builds a workspace over a document. Canonical metric names come
// from configuration; classification tags on the line items are
// discovered into the registry as additional metrics.
func New(doc *dataset.Document, canonical []string) *Workspace {
	if doc == nil {
		doc = &dataset.Document{}
	}
	w := &Workspace{
		doc:      doc,
		registry: metrics.NewRegistry(canonical),
		baseline: map[string]Row{},
		entries:  map[string][]formula.Entry{},
		scaled:   map[string]bool{},
	}
	for _, item := range doc.Items {
		if item.RowID == "" {
			item.RowID = uuid.NewString()
		}
		if strings.TrimSpace(item.Classification) != "" {
			w.registry.Add(item.Classification)
		}
	}
	return w
}

// Document exposes the underlying snapshot for read access.
func (w *Workspace) Document() *dataset.Document {
	return w.doc
}

// Metrics returns the ordered metric names currently known.
func (w *Workspace) Metrics() []string {
	return w.registry.Names()
}

// SetBaseline records the extraction-supplied baseline row for a metric,
// registering the metric name if it is new.
func (w *Workspace) SetBaseline(row Row) {
	w.registry.Add(row.Metric)
	row.Manual = false
	w.baseline[dataset.Normalize(row.Metric)] = row
}

// AddEntry attaches a manual entry to its metric, assigning an id when
// the entry arrives without one. Returns the stored entry.
func (w *Workspace) AddEntry(entry formula.Entry) formula.Entry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	w.registry.Add(entry.Metric)
	key := dataset.Normalize(entry.Metric)
	w.entries[key] = append(w.entries[key], entry)
	return entry
}

// RemoveEntry detaches an entry from a metric by id.
func (w *Workspace) RemoveEntry(metric, id string) bool {
	key := dataset.Normalize(metric)
	list := w.entries[key]
	for i, entry := range list {
		if entry.ID == id {
			w.entries[key] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// EntriesFor returns the manual entries attached to a metric.
func (w *Workspace) EntriesFor(metric string) []formula.Entry {
	list := w.entries[dataset.Normalize(metric)]
	out := make([]formula.Entry, len(list))
	copy(out, list)
	return out
}

// EvaluateEntry evaluates a single entry against the current snapshot
// without attaching it to a metric. Used for previewing a draft formula.
func (w *Workspace) EvaluateEntry(entry formula.Entry) (formula.Result, bool) {
	return w.evaluator().Evaluate(entry)
}

func (w *Workspace) evaluator() *formula.Evaluator {
	return &formula.Evaluator{
		Resolver:         &resolve.Resolver{Doc: w.doc},
		ZeroBaseFallback: w.ZeroBaseFallback,
	}
}

func equalFold(a, b string) bool {
	return dataset.Normalize(a) == dataset.Normalize(b)
}
