package unit

import (
	"strconv"
	"strings"
)

// Convert converts value from one unit to another by pivoting through
// the category's base unit. Units from different categories are
// rejected, never coerced.
func Convert(value float64, from, to Unit) (float64, error) {
	if from.Category != to.Category {
		return 0, &IncompatibleUnitsError{From: from.Category, To: to.Category}
	}
	return to.FromBase(from.ToBase(value)), nil
}

// ParseValue parses a numeric token as a float64.
func ParseValue(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &MalformedValueError{Token: token}
	}
	return v, nil
}

// Format renders v in fixed-point notation with at most prec decimal
// places, trimming trailing zeros and a trailing decimal point.
func Format(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
