package unit

import (
	"fmt"
	"sort"
	"strings"
)

// registry is the canonical set of known units, keyed by lowercase
// symbol. It is populated once at startup and never mutated, so it is
// safe for unsynchronized concurrent reads.
var registry = buildRegistry()

func buildRegistry() map[string]Unit {
	units := []Unit{
		// Temperature pivots through kelvin.
		formula("k", Temperature, identity, identity),
		formula("c", Temperature,
			func(v float64) float64 { return v + 273.15 },
			func(v float64) float64 { return v - 273.15 }),
		formula("f", Temperature,
			func(v float64) float64 { return (v-32)*5/9 + 273.15 },
			func(v float64) float64 { return (v-273.15)*9/5 + 32 }),
		// Rankine is a pure scale of kelvin.
		linear("r", Temperature, 5.0/9.0),
		// Delisle runs backwards: 0 °De is boiling water.
		formula("de", Temperature,
			func(v float64) float64 { return 373.15 - v*2/3 },
			func(v float64) float64 { return (373.15 - v) * 3 / 2 }),

		linear("m", Length, 1),
		linear("km", Length, 1000),
		linear("dm", Length, 0.1),
		linear("cm", Length, 0.01),
		linear("mm", Length, 0.001),
		linear("um", Length, 1e-6),
		linear("nm", Length, 1e-9),
		linear("in", Length, 0.0254),
		linear("ft", Length, 0.3048),
		linear("yd", Length, 0.9144),
		linear("mi", Length, 1609.344),
		linear("nmi", Length, 1852.0),

		linear("g", Weight, 1),
		linear("kg", Weight, 1000),
		linear("mg", Weight, 0.001),
		linear("ug", Weight, 1e-6),
		linear("lb", Weight, 453.592),
		linear("oz", Weight, 28.3495),
		linear("st", Weight, 6350.29),
		linear("t", Weight, 1e6),

		linear("l", Volume, 1),
		linear("ml", Volume, 0.001),
		linear("cl", Volume, 0.01),
		linear("dl", Volume, 0.1),
		linear("gal", Volume, 3.78541),
		linear("qt", Volume, 0.946353),
		linear("pt", Volume, 0.473176),
		linear("cup", Volume, 0.236588),
		linear("floz", Volume, 0.0295735),
		linear("tbsp", Volume, 0.0147868),
		linear("tsp", Volume, 0.00492892),

		linear("b", Data, 1),
		linear("kb", Data, 1000),
		linear("mb", Data, 1e6),
		linear("gb", Data, 1e9),
		linear("tb", Data, 1e12),
		linear("pb", Data, 1e15),
		linear("kib", Data, 1024),
		linear("mib", Data, 1048576),
		linear("gib", Data, 1073741824),
		linear("tib", Data, 1099511627776),
		linear("pib", Data, 1125899906842624),
		linear("bit", Data, 0.125),

		linear("s", Time, 1),
		linear("ms", Time, 0.001),
		linear("us", Time, 1e-6),
		linear("ns", Time, 1e-9),
		linear("min", Time, 60),
		linear("hr", Time, 3600),
		linear("day", Time, 86400),
		linear("wk", Time, 604800),
		// Julian year.
		linear("yr", Time, 31557600),
	}

	m := make(map[string]Unit, len(units))
	for _, u := range units {
		if _, dup := m[u.Symbol]; dup {
			panic("duplicate unit symbol: " + u.Symbol)
		}
		m[u.Symbol] = u
	}
	return m
}

// Find looks up a unit by symbol, case-insensitively. The returned
// error carries the input as the caller gave it.
func Find(name string) (Unit, error) {
	u, ok := registry[strings.ToLower(name)]
	if !ok {
		return Unit{}, &InvalidUnitError{Input: name}
	}
	return u, nil
}

// Group is one category's worth of registered unit symbols, sorted
// lexicographically.
type Group struct {
	Category Category
	Symbols  []string
}

// Groups returns all registered units grouped by category. Groups are
// ordered by category display name; symbols within a group are sorted.
func Groups() []Group {
	byCat := make(map[Category][]string)
	for sym, u := range registry {
		byCat[u.Category] = append(byCat[u.Category], sym)
	}

	groups := make([]Group, 0, len(byCat))
	for cat, syms := range byCat {
		sort.Strings(syms)
		groups = append(groups, Group{Category: cat, Symbols: syms})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category.String() < groups[j].Category.String()
	})
	return groups
}

// List renders a plain-text report of every registered unit, grouped
// by category. Display only; nothing parses this back.
func List() string {
	var b strings.Builder
	for i, g := range Groups() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s (base: %s)\n", g.Category, g.Category.BaseName())
		fmt.Fprintf(&b, "  %s\n", strings.Join(g.Symbols, ", "))
	}
	return b.String()
}
