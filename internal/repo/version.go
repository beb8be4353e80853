// SPDX-License-Identifier: Apache-2.0

package repo

import (
	"strconv"
	"strings"
)

// PiSi versions are dotted tuples of arbitrary arity (70.0, 1.1.10.546).
// Semantic version libraries reject those, so comparison works directly on
// the segments: numerically where both segments are numbers, lexically
// otherwise, with missing segments counting as zero.

// CompareVersions compares two dotted version strings. It returns -1 when a
// is older than b, 0 when they are equal and 1 when a is newer than b.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		sa, sb := "0", "0"
		if i < len(as) {
			sa = as[i]
		}
		if i < len(bs) {
			sb = bs[i]
		}

		if c := compareSegment(sa, sb); c != 0 {
			return c
		}
	}

	return 0
}

func compareSegment(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case errA == nil:
		// numeric releases sort after alpha/beta style suffixes
		return 1
	case errB == nil:
		return -1
	default:
		return strings.Compare(a, b)
	}
}
