// Package fuzzy implements the approximate string matching used for member
// detection. The score is a partial ratio: the best alignment of the shorter
// string against any same-length substring of the longer one, rated by
// normalized indel similarity on a 0..100 scale.
package fuzzy

import "math"

// PartialRatio returns the best substring alignment score of a against b,
// normalized to 0..100. Comparison is caller-normalized: pass lowercased
// input when case must not matter. Two empty strings rate 100; an empty
// string against a non-empty one rates 0.
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	for start := 0; start+len(short) <= len(long); start++ {
		r := indelRatio(short, long[start:start+len(short)])
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// indelRatio rates a against b as 2*LCS/(len(a)+len(b)) scaled to 0..100 and
// rounded to the nearest integer. Equivalent to edit similarity when only
// insertions and deletions are allowed.
func indelRatio(a, b []rune) int {
	// LCS length, two-row DP.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(b)]
	return int(math.Round(200 * float64(lcs) / float64(len(a)+len(b))))
}
