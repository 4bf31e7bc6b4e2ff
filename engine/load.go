package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Nusri7/sopcalc/engine/dataset"
	"github.com/Nusri7/sopcalc/engine/formula"
)

// SeedMetric is one row of the extraction collaborator's initial summary,
// optionally carrying pre-authored calculation entries.
type SeedMetric struct {
	Metric       string          `json:"metric"`
	Value        string          `json:"value"`
	Statement    string          `json:"statement,omitempty"`
	Column       string          `json:"column,omitempty"`
	SourceLine   string          `json:"source_line,omitempty"`
	Calculations []formula.Entry `json:"calculations,omitempty"`
}

// Payload is the JSON document handed over by the extraction collaborator.
type Payload struct {
	LineItems     []*dataset.LineItem `json:"line_items"`
	Columns       []string            `json:"columns"`
	LatestColumns map[string]string   `json:"latest_columns,omitempty"`
	Summary       []SeedMetric        `json:"summary,omitempty"`
}

// Options configures workspace construction.
type Options struct {
	Canonical        []string
	ZeroBaseFallback bool
}

// Build assembles a workspace from a decoded payload.
func Build(payload Payload, opts Options) *Workspace {
	doc := &dataset.Document{
		Items:        payload.LineItems,
		Columns:      payload.Columns,
		LatestColumn: payload.LatestColumns,
	}

	w := New(doc, opts.Canonical)
	w.ZeroBaseFallback = opts.ZeroBaseFallback

	for _, seed := range payload.Summary {
		w.SetBaseline(Row{
			Metric:     seed.Metric,
			Value:      seed.Value,
			Statement:  seed.Statement,
			Column:     seed.Column,
			SourceLine: seed.SourceLine,
		})
		for _, entry := range seed.Calculations {
			if entry.Metric == "" {
				entry.Metric = seed.Metric
			}
			w.AddEntry(entry)
		}
	}

	log.Printf("Loaded %d line items, %d columns, %d metrics",
		len(doc.Items), len(doc.Columns), len(w.Metrics()))
	return w
}

// Load decodes a payload from a reader and builds a workspace.
func Load(r io.Reader, opts Options) (*Workspace, error) {
	var payload Payload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return Build(payload, opts), nil
}

// LoadFile builds a workspace from a dataset JSON file.
func LoadFile(path string, opts Options) (*Workspace, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()
	return Load(file, opts)
}
