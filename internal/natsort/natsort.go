package natsort

import (
	"sort"
	"strings"
)

// Compare returns -1, 0, or +1 ordering a before, equal to, or after b.
// Digit runs are compared by numeric value, everything else byte-wise.
// Strings that differ only in zero padding ("01" vs "1") fall back to a
// plain comparison so the order stays total.
func Compare(a, b string) int {
	ia, ib := 0, 0
	for ia < len(a) && ib < len(b) {
		ra, rb := a[ia], b[ib]
		if isDigit(ra) && isDigit(rb) {
			da, na := digitRun(a, ia)
			db, nb := digitRun(b, ib)
			if c := compareNumeric(da, db); c != 0 {
				return c
			}
			ia, ib = na, nb
			continue
		}
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		ia++
		ib++
	}
	switch {
	case ia < len(a):
		return 1
	case ib < len(b):
		return -1
	}
	// Equal numerically; differ only in padding (or not at all).
	return strings.Compare(a, b)
}

// Less reports whether a orders before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort orders names in place.
func Sort(names []string) {
	sort.Slice(names, func(i, j int) bool { return Less(names[i], names[j]) })
}

// SortBy orders values in place using the natural order of key(value).
// Key ties are broken by the natural order of the values themselves.
func SortBy(values []string, key func(string) string) {
	sort.Slice(values, func(i, j int) bool {
		if c := Compare(key(values[i]), key(values[j])); c != 0 {
			return c < 0
		}
		return Less(values[i], values[j])
	})
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func digitRun(s string, start int) (string, int) {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return s[start:end], end
}

func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
