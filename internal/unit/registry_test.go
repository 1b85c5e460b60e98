package unit

import (
	"errors"
	"strings"
	"testing"
)

func TestFind_CaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"kg", "kg"},
		{"KG", "kg"},
		{"Km", "km"},
		{"GiB", "gib"},
		{"F", "f"},
	}
	for _, tt := range tests {
		u, err := Find(tt.input)
		if err != nil {
			t.Errorf("Find(%q): %v", tt.input, err)
			continue
		}
		if u.Symbol != tt.want {
			t.Errorf("Find(%q).Symbol = %q, want %q", tt.input, u.Symbol, tt.want)
		}
	}
}

func TestFind_UnknownSymbol(t *testing.T) {
	t.Parallel()

	_, err := Find("xyz")
	if err == nil {
		t.Fatal("Find(\"xyz\") succeeded, want error")
	}
	if !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Find(\"xyz\") error = %v, want ErrUnknownUnit", err)
	}

	var invalid *InvalidUnitError
	if !errors.As(err, &invalid) {
		t.Fatalf("Find(\"xyz\") error type = %T, want *InvalidUnitError", err)
	}

	// The error keeps the input as given, not lowercased.
	_, err = Find("XyZ")
	if !errors.As(err, &invalid) || invalid.Input != "XyZ" {
		t.Errorf("Find(\"XyZ\") error = %v, want to carry original casing", err)
	}
}

func TestGroups_SortedAndComplete(t *testing.T) {
	t.Parallel()

	groups := Groups()
	if len(groups) != 6 {
		t.Fatalf("Groups() returned %d groups, want 6", len(groups))
	}

	wantOrder := []Category{Data, Length, Temperature, Time, Volume, Weight}
	wantSymbols := map[Category][]string{
		Data:        {"b", "bit", "gb", "gib", "kb", "kib", "mb", "mib", "pb", "pib", "tb", "tib"},
		Length:      {"cm", "dm", "ft", "in", "km", "m", "mi", "mm", "nm", "nmi", "um", "yd"},
		Temperature: {"c", "de", "f", "k", "r"},
		Time:        {"day", "hr", "min", "ms", "ns", "s", "us", "wk", "yr"},
		Volume:      {"cl", "cup", "dl", "floz", "gal", "l", "ml", "pt", "qt", "tbsp", "tsp"},
		Weight:      {"g", "kg", "lb", "mg", "oz", "st", "t", "ug"},
	}

	for i, g := range groups {
		if g.Category != wantOrder[i] {
			t.Errorf("group %d category = %s, want %s", i, g.Category, wantOrder[i])
			continue
		}
		want := wantSymbols[g.Category]
		if len(g.Symbols) != len(want) {
			t.Errorf("%s has %d symbols, want %d: %v", g.Category, len(g.Symbols), len(want), g.Symbols)
			continue
		}
		for j, sym := range g.Symbols {
			if sym != want[j] {
				t.Errorf("%s symbol %d = %q, want %q", g.Category, j, sym, want[j])
			}
		}
	}
}

func TestList_GroupedReport(t *testing.T) {
	t.Parallel()

	out := List()

	headers := []string{
		"Data (base: byte)",
		"Length (base: meter)",
		"Temperature (base: kelvin)",
		"Time (base: second)",
		"Volume (base: liter)",
		"Weight (base: gram)",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		if idx < 0 {
			t.Errorf("List() missing header %q", h)
			continue
		}
		if idx < last {
			t.Errorf("List() header %q out of order", h)
		}
		last = idx
	}

	if !strings.Contains(out, "c, de, f, k, r") {
		t.Errorf("List() missing sorted temperature symbols:\n%s", out)
	}
}
