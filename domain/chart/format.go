package chart

import "strconv"

// Placeholder stands in for an absent statistic.
const Placeholder = "—"

// sig formats v in general notation with the given significant figures.
func sig(v float64, digits int) string {
	return strconv.FormatFloat(v, 'g', digits, 64)
}

// optional formats an optional statistic to five significant figures.
func optional(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return sig(*v, 5)
}

func fixed3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
