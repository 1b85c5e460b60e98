package unit

import (
	"errors"
	"math"
	"testing"
)

func TestConvert_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		from  string
		to    string
		want  float64
		tol   float64 // 0 means exact
	}{
		{0, "c", "f", 32, 0},
		{100, "c", "f", 212, 0},
		{-40, "c", "f", -40, 0},
		{273.15, "k", "c", 0, 1e-9},
		{0, "de", "c", 100, 1e-9},
		{491.67, "r", "f", 32, 1e-9},
		{1, "km", "m", 1000, 0},
		{1, "mi", "km", 1.609344, 1e-9},
		{12, "in", "ft", 1, 1e-9},
		{1, "kg", "lb", 2.2046, 0.01},
		{1, "st", "lb", 14, 1e-3},
		{1, "gal", "qt", 4, 1e-3},
		{1, "gib", "b", 1073741824, 0},
		{1, "gb", "b", 1e9, 0},
		{1, "kib", "kb", 1.024, 1e-9},
		{8, "bit", "b", 1, 0},
		{1, "wk", "day", 7, 0},
		{90, "min", "hr", 1.5, 0},
	}

	for _, tt := range tests {
		from := mustFind(t, tt.from)
		to := mustFind(t, tt.to)
		got, err := Convert(tt.value, from, to)
		if err != nil {
			t.Errorf("Convert(%v, %s, %s): %v", tt.value, tt.from, tt.to, err)
			continue
		}
		if tt.tol == 0 {
			if got != tt.want {
				t.Errorf("Convert(%v, %s, %s) = %v, want exactly %v", tt.value, tt.from, tt.to, got, tt.want)
			}
		} else if !approxEqual(got, tt.want, tt.tol) {
			t.Errorf("Convert(%v, %s, %s) = %v, want %v ± %v", tt.value, tt.from, tt.to, got, tt.want, tt.tol)
		}
	}
}

func TestConvert_SelfIsIdentity(t *testing.T) {
	t.Parallel()

	for _, g := range Groups() {
		for _, sym := range g.Symbols {
			u := mustFind(t, sym)
			for _, x := range []float64{0, 1, -1} {
				got, err := Convert(x, u, u)
				if err != nil {
					t.Errorf("Convert(%v, %s, %s): %v", x, sym, sym, err)
					continue
				}
				if got != x {
					t.Errorf("Convert(%v, %s, %s) = %v, want input unchanged", x, sym, sym, got)
				}
			}
		}
	}
}

func TestConvert_CrossCategoryRejected(t *testing.T) {
	t.Parallel()

	meter := mustFind(t, "m")
	gram := mustFind(t, "g")

	_, err := Convert(5, meter, gram)
	if err == nil {
		t.Fatal("Convert(5, m, g) succeeded, want error")
	}
	if !errors.Is(err, ErrIncompatibleUnits) {
		t.Errorf("error = %v, want ErrIncompatibleUnits", err)
	}

	var incompat *IncompatibleUnitsError
	if !errors.As(err, &incompat) {
		t.Fatalf("error type = %T, want *IncompatibleUnitsError", err)
	}
	if incompat.From != Length || incompat.To != Weight {
		t.Errorf("error categories = %s/%s, want Length/Weight", incompat.From, incompat.To)
	}
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token   string
		want    float64
		wantErr bool
	}{
		{"1", 1, false},
		{"-40", -40, false},
		{"3.5e2", 350, false},
		{".5", 0.5, false},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.token)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseValue(%q) succeeded, want error", tt.token)
			} else if !errors.Is(err, ErrMalformedValue) {
				t.Errorf("ParseValue(%q) error = %v, want ErrMalformedValue", tt.token, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseValue(%q): %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseValue(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		prec  int
		want  string
	}{
		{32, 4, "32"},
		{1.5, 4, "1.5"},
		{1.609344, 4, "1.6093"},
		{1000, 4, "1000"},
		{123.456789, 4, "123.4568"},
		{-40, 4, "-40"},
		{2.20462, 2, "2.2"},
		{7, 0, "7"},
		{math.Pi, 4, "3.1416"},
	}
	for _, tt := range tests {
		if got := Format(tt.value, tt.prec); got != tt.want {
			t.Errorf("Format(%v, %d) = %q, want %q", tt.value, tt.prec, got, tt.want)
		}
	}
}
