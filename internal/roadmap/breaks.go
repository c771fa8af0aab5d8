package roadmap

import "strings"

// DefaultBreakMonths is assumed when the break duration is missing or not
// recognized.
const DefaultBreakMonths = 12

// breakDurations maps duration fragments to approximate months. Entries are
// checked in order; both hyphen and en dash ranges are accepted.
var breakDurations = []struct {
	fragments []string
	months    int
}{
	{[]string{"under 1", "< 1"}, 6},
	{[]string{"1–2", "1-2"}, 18},
	{[]string{"2–4", "2-4"}, 36},
	{[]string{"4–6", "4-6"}, 60},
	{[]string{"6+", "6 +"}, 84},
}

// ParseBreakMonths converts a free-text career break duration such as
// "2-4 years" into an approximate month count.
func ParseBreakMonths(s string) int {
	if s == "" {
		return DefaultBreakMonths
	}
	lower := strings.ToLower(s)
	for _, d := range breakDurations {
		for _, f := range d.fragments {
			if strings.Contains(lower, f) {
				return d.months
			}
		}
	}
	return DefaultBreakMonths
}
