package diff

import (
	"maps"
	"slices"

	"datadiff/core/table"

	lev "github.com/texttheater/golang-levenshtein/levenshtein"
)

const (
	// shortStringLimit is the longest string (in runes) scored with a full edit distance.
	shortStringLimit = 50
	// affixLength is the number of runes compared at each end of a long string.
	affixLength = 20

	prefixWeight = 0.4
	suffixWeight = 0.4
	lengthWeight = 0.2
)

// unitCosts weights insertions, deletions and substitutions equally.
var unitCosts = lev.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: lev.IdenticalRunes,
}

// StringSimilarity scores two values in [0,1].
//
// Equal strings score 1 and an empty side scores 0. Strings of up to 50 runes are
// scored by normalized edit distance. Longer strings are approximated from their first
// and last 20 runes and their length ratio, weighted 0.4/0.4/0.2.
func StringSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1
	}
	if s1 == "" || s2 == "" {
		return 0
	}

	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) <= shortStringLimit && len(r2) <= shortStringLimit {
		return editRatio(r1, r2)
	}

	prefix := editRatio(head(r1, affixLength), head(r2, affixLength))
	suffix := editRatio(tail(r1, affixLength), tail(r2, affixLength))
	return prefixWeight*prefix + suffixWeight*suffix + lengthWeight*lengthRatio(len(r1), len(r2))
}

// RowSimilarity is the mean StringSimilarity over the columns both rows hold a
// non-null value for. Rows without such a column score 0.
// Columns are visited in sorted order so the result is reproducible to the last bit.
func RowSimilarity(r1, r2 table.Row) float64 {
	var sum float64
	var n int
	for _, col := range slices.Sorted(maps.Keys(r1)) {
		v1 := r1[col]
		if v1 == nil {
			continue
		}
		v2 := r2[col]
		if v2 == nil {
			continue
		}
		sum += StringSimilarity(*v1, *v2)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// editRatio returns 1 - distance/maxLen.
func editRatio(r1, r2 []rune) float64 {
	maxLen := max(len(r1), len(r2))
	if maxLen == 0 {
		return 1
	}
	distance := lev.DistanceForStrings(r1, r2, unitCosts)
	return 1 - float64(distance)/float64(maxLen)
}

// lengthRatio returns min/max of two lengths, 1 when both are zero.
func lengthRatio(a, b int) float64 {
	hi := max(a, b)
	if hi == 0 {
		return 1
	}
	return float64(min(a, b)) / float64(hi)
}

func head(r []rune, n int) []rune {
	if len(r) > n {
		return r[:n]
	}
	return r
}

func tail(r []rune, n int) []rune {
	if len(r) > n {
		return r[len(r)-n:]
	}
	return r
}
