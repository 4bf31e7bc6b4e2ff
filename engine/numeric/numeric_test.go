package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse_SimpleNumber(t *testing.T) {
	result, ok := Parse("123.45")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if result.String() != "123.45" {
		t.Errorf("Expected '123.45', got '%s'", result.String())
	}
}

func TestParse_ParenthesizedNegative(t *testing.T) {
	result, ok := Parse("(1,234.50)")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if result.String() != "-1234.5" {
		t.Errorf("Expected '-1234.5', got '%s'", result.String())
	}
}

func TestParse_UnicodeMinus(t *testing.T) {
	result, ok := Parse("−1,000")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if result.String() != "-1000" {
		t.Errorf("Expected '-1000', got '%s'", result.String())
	}
}

func TestParse_EmDashPlaceholder(t *testing.T) {
	if _, ok := Parse("—"); ok {
		t.Error("Expected em dash placeholder to fail")
	}
}

func TestParse_EmptyString(t *testing.T) {
	if _, ok := Parse(""); ok {
		t.Error("Expected empty string to fail")
	}
}

func TestParse_BareSentinels(t *testing.T) {
	for _, text := range []string{"-", ".", "-.", "  -  "} {
		if _, ok := Parse(text); ok {
			t.Errorf("Expected '%s' to fail", text)
		}
	}
}

func TestParse_CurrencyAndSpaces(t *testing.T) {
	result, ok := Parse("RM 1 234 567.89")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if result.String() != "1234567.89" {
		t.Errorf("Expected '1234567.89', got '%s'", result.String())
	}
}

func TestParse_InteriorMinusRejected(t *testing.T) {
	if _, ok := Parse("12-34"); ok {
		t.Error("Expected malformed value to fail")
	}
}

func TestFormat_Grouping(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"-1234.5", "-1,234.5"},
		{"1234567.89", "1,234,567.89"},
		{"100.1000000000", "100.1"},
		{"2.00", "2"},
	}

	for _, test := range tests {
		d, err := decimal.NewFromString(test.in)
		assert.NoError(t, err)
		assert.Equal(t, test.expected, Format(d), "input %s", test.in)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	values := []string{"0", "-1234.5", "987654321.0123456789", "0.25", "-0.0000000001"}

	for _, text := range values {
		d, err := decimal.NewFromString(text)
		assert.NoError(t, err)

		parsed, ok := Parse(Format(d))
		assert.True(t, ok, "round-trip parse failed for %s", text)
		assert.True(t, parsed.Equal(d), "round-trip mismatch for %s: got %s", text, parsed)
	}
}
