// Package suggest offers "did you mean" candidates for misspelled task
// names using plain Levenshtein distance.
package suggest

import (
	"sort"
	"strings"
)

// threshold is the largest edit distance at which a suggestion is still
// considered plausible. Anything further away is noise.
const threshold = 4

// Distance computes the Levenshtein edit distance between two strings:
// the minimum number of single-character insertions, deletions and
// substitutions needed to turn one into the other. Comparison is
// case-sensitive and there is no transposition discount.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// ShortName strips the namespace prefix from a canonical task name: the
// segment after the last dot. Suggestions compare against short names
// so that a namespaced task still matches what the user typed.
func ShortName(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// Suggest returns the task names closest to the misspelled input. All
// names sharing the minimum distance are returned, in sorted order, but
// only when that minimum is within the threshold; clearly unrelated
// input gets no suggestion at all.
func Suggest(name string, known []string) []string {
	if len(known) == 0 {
		return nil
	}
	best := -1
	var matches []string
	for _, candidate := range known {
		d := Distance(name, ShortName(candidate))
		switch {
		case best < 0 || d < best:
			best = d
			matches = matches[:0]
			matches = append(matches, candidate)
		case d == best:
			matches = append(matches, candidate)
		}
	}
	if best > threshold {
		return nil
	}
	sort.Strings(matches)
	return matches
}
