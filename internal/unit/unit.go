// Package unit implements the unit registry and conversion engine.
// Every unit converts through its category's base unit, so adding a
// unit needs only its own pair of conversion functions.
package unit

// Category identifies a kind of measurement. Units are convertible
// only within the same category.
type Category int

const (
	Temperature Category = iota
	Length
	Weight
	Volume
	Data
	Time
)

var categoryNames = map[Category]string{
	Temperature: "Temperature",
	Length:      "Length",
	Weight:      "Weight",
	Volume:      "Volume",
	Data:        "Data",
	Time:        "Time",
}

var baseNames = map[Category]string{
	Temperature: "kelvin",
	Length:      "meter",
	Weight:      "gram",
	Volume:      "liter",
	Data:        "byte",
	Time:        "second",
}

// String returns the category's display name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// BaseName returns the name of the category's base unit.
func (c Category) BaseName() string {
	return baseNames[c]
}

// Unit describes a single unit of measure. The two conversion
// functions are exact inverses of each other; for the base unit of a
// category both are the identity.
type Unit struct {
	Symbol   string
	Category Category

	toBase   func(float64) float64
	fromBase func(float64) float64
}

// ToBase converts a value expressed in this unit to the category's base unit.
func (u Unit) ToBase(v float64) float64 {
	return u.toBase(v)
}

// FromBase converts a value expressed in the category's base unit to this unit.
func (u Unit) FromBase(v float64) float64 {
	return u.fromBase(v)
}

// linear builds a unit whose base conversion is a pure scale factor:
// toBase multiplies, fromBase divides.
func linear(symbol string, cat Category, factor float64) Unit {
	return Unit{
		Symbol:   symbol,
		Category: cat,
		toBase:   func(v float64) float64 { return v * factor },
		fromBase: func(v float64) float64 { return v / factor },
	}
}

// formula builds a unit with explicit conversion functions. Used by
// temperature units, whose conversions involve offsets.
func formula(symbol string, cat Category, toBase, fromBase func(float64) float64) Unit {
	return Unit{
		Symbol:   symbol,
		Category: cat,
		toBase:   toBase,
		fromBase: fromBase,
	}
}

func identity(v float64) float64 { return v }
