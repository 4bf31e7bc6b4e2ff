package metrics

import "testing"

func TestRegistry_CanonicalOrderPreserved(t *testing.T) {
	r := NewRegistry([]string{"Revenues", "Gross Profit", "Net Profit"})

	names := r.Names()
	if len(names) != 3 {
		t.Fatalf("Expected 3 names, got %d", len(names))
	}
	if names[0] != "Revenues" || names[2] != "Net Profit" {
		t.Errorf("Canonical order broken: %v", names)
	}
}

func TestRegistry_DiscoveredAppends(t *testing.T) {
	r := NewRegistry([]string{"Revenues"})

	if !r.Add("EBITDA Bridge") {
		t.Fatal("Expected new tag to be added")
	}
	names := r.Names()
	if names[len(names)-1] != "EBITDA Bridge" {
		t.Errorf("Expected discovered tag last, got %v", names)
	}
}

func TestRegistry_DuplicatesIgnoredCaseInsensitive(t *testing.T) {
	r := NewRegistry([]string{"Revenues"})

	if r.Add("  REVENUES ") {
		t.Error("Expected case-insensitive duplicate to be rejected")
	}
	if r.Add("") {
		t.Error("Expected blank name to be rejected")
	}
	if len(r.Names()) != 1 {
		t.Errorf("Expected 1 name, got %v", r.Names())
	}
}

func TestRegistry_Display(t *testing.T) {
	r := NewRegistry([]string{"Net Profit"})

	display, ok := r.Display("net profit")
	if !ok {
		t.Fatal("Expected lookup to succeed")
	}
	if display != "Net Profit" {
		t.Errorf("Expected 'Net Profit', got '%s'", display)
	}
	if !r.Has(" NET PROFIT ") {
		t.Error("Expected Has to match case-insensitively")
	}
}
