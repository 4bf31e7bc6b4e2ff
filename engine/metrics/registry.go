// Package metrics keeps the ordered set of summary metric names: the
// fixed canonical list from configuration plus classification tags
// discovered on the loaded line items.
package metrics

import "strings"

// Registry holds metric names in display order. Names are unique under
// trimmed case-insensitive comparison; the canonical block keeps its
// configured order, discovered tags append in discovery order.
type Registry struct {
	names []string
	index map[string]int
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewRegistry seeds a registry with the canonical metric list.
func NewRegistry(canonical []string) *Registry {
	r := &Registry{index: map[string]int{}}
	for _, name := range canonical {
		r.Add(name)
	}
	return r
}

// Add registers a discovered metric name. Blank names and duplicates are
// ignored; returns true when the name was new.
func (r *Registry) Add(name string) bool {
	key := normalize(name)
	if key == "" {
		return false
	}
	if _, exists := r.index[key]; exists {
		return false
	}
	r.index[key] = len(r.names)
	r.names = append(r.names, strings.TrimSpace(name))
	return true
}

// Has reports whether the name is registered.
func (r *Registry) Has(name string) bool {
	_, exists := r.index[normalize(name)]
	return exists
}

// Display returns the registered display form of a name.
func (r *Registry) Display(name string) (string, bool) {
	i, exists := r.index[normalize(name)]
	if !exists {
		return "", false
	}
	return r.names[i], true
}

// Names returns all metric names in display order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
