package resolve

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
)

// FilenameScore computes a token-set similarity between the original
// filename (directory and extension already stripped) and a candidate's
// "Artist - Title" string, as an integer percentage in [0,100].
//
// Both strings are lowercased and split into token sets on anything that is
// not a letter or digit. The sets are recombined into their sorted
// intersection and the intersection plus each side's leftover tokens, and the
// best pairwise edit-distance similarity of the three recombinations wins.
// Whenever one string's tokens are a subset of the other's, the score is 100,
// which makes the measure tolerant of "(Official Video)" suffixes in the
// filename and missing featured-artist credits in the candidate while still
// penalizing genuinely different titles.
func FilenameScore(filename, candidate string) int {
	set1 := tokenSet(filename)
	set2 := tokenSet(candidate)

	intersection := make([]string, 0, len(set1))
	rest1 := make([]string, 0, len(set1))
	rest2 := make([]string, 0, len(set2))
	for token := range set1 {
		if _, ok := set2[token]; ok {
			intersection = append(intersection, token)
		} else {
			rest1 = append(rest1, token)
		}
	}
	for token := range set2 {
		if _, ok := set1[token]; !ok {
			rest2 = append(rest2, token)
		}
	}
	sort.Strings(intersection)
	sort.Strings(rest1)
	sort.Strings(rest2)

	common := strings.Join(intersection, " ")
	combined1 := strings.TrimSpace(common + " " + strings.Join(rest1, " "))
	combined2 := strings.TrimSpace(common + " " + strings.Join(rest2, " "))

	best := ratio(common, combined1)
	if r := ratio(common, combined2); r > best {
		best = r
	}
	if r := ratio(combined1, combined2); r > best {
		best = r
	}
	return best
}

// tokenSet lowercases s and splits it into a set of alphanumeric tokens.
func tokenSet(s string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}

// ratio is the edit-distance similarity of two recombined token strings as a
// percentage. Comparisons against the empty recombination score zero unless
// both sides are empty-equal.
func ratio(a, b string) int {
	if a == b {
		if a == "" {
			return 0
		}
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	similarity, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	score := int(math.Round(float64(similarity) * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
