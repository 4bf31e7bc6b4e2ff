package numeric

import "testing"

func TestScaleCell_MultipliesByThousand(t *testing.T) {
	result, applied := ScaleCell("1,234.5")
	if !applied {
		t.Fatal("Expected scale to apply")
	}
	if result != "1,234,500" {
		t.Errorf("Expected '1,234,500', got '%s'", result)
	}
}

func TestScaleCell_SkipsPercent(t *testing.T) {
	for _, text := range []string{"12.5%", "12.5 percent", "12.5 pct"} {
		result, applied := ScaleCell(text)
		if applied {
			t.Errorf("Expected '%s' to be skipped", text)
		}
		if result != text {
			t.Errorf("Expected '%s' unchanged, got '%s'", text, result)
		}
	}
}

func TestScaleCell_SkipsUnparseable(t *testing.T) {
	result, applied := ScaleCell("n/a")
	if applied {
		t.Error("Expected unparseable cell to be skipped")
	}
	if result != "n/a" {
		t.Errorf("Expected cell unchanged, got '%s'", result)
	}
}

func TestAbsCell_Negative(t *testing.T) {
	result, applied := AbsCell("(2,500)")
	if !applied {
		t.Fatal("Expected abs to apply")
	}
	if result != "2,500" {
		t.Errorf("Expected '2,500', got '%s'", result)
	}
}

func TestAbsCell_Idempotent(t *testing.T) {
	first, applied := AbsCell("-100")
	if !applied {
		t.Fatal("Expected abs to apply")
	}
	second, applied := AbsCell(first)
	if applied {
		t.Error("Expected second abs to be a no-op")
	}
	if second != first {
		t.Errorf("Expected '%s', got '%s'", first, second)
	}
}
