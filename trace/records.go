// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// AllRecords returns 0..n-1.
func AllRecords(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// ParseRecords parses a list such as "0,2,5-9" into sorted, distinct indices.
func ParseRecords(s string) ([]int, error) {
	var out []int

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty item in %q", ErrRecordList, s)
		}

		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil || first < 0 {
			return nil, fmt.Errorf("%w: %q", ErrRecordList, part)
		}

		last := first
		if isRange {
			last, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || last < first {
				return nil, fmt.Errorf("%w: %q", ErrRecordList, part)
			}
		}

		for r := first; r <= last; r++ {
			out = append(out, r)
		}
	}

	return normalize(out), nil
}

// normalize sorts a copy of records and drops duplicates.
func normalize(records []int) []int {
	out := slices.Clone(records)
	slices.Sort(out)

	return slices.Compact(out)
}
