package diff

import (
	"maps"
	"slices"
	"unicode/utf8"

	"datadiff/core/table"
)

// Signature is the cheap summary of one value.
type Signature struct {
	Length int
	First  rune
	Last   rune
}

// Fingerprint maps each non-null column of a row to its Signature.
type Fingerprint map[string]Signature

// NewFingerprint summarizes a row.
func NewFingerprint(row table.Row) Fingerprint {
	fp := make(Fingerprint, len(row))
	for col, v := range row {
		if v == nil || *v == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(*v)
		last, _ := utf8.DecodeLastRuneInString(*v)
		fp[col] = Signature{
			Length: utf8.RuneCountInString(*v),
			First:  first,
			Last:   last,
		}
	}
	return fp
}

// FingerprintSimilarity estimates row similarity from fingerprints alone.
// Each shared column scores (lengthRatio + 0.5*[first equal] + 0.5*[last equal]) / 2,
// and the result is the mean over shared columns, 0 when none are shared.
func FingerprintSimilarity(f1, f2 Fingerprint) float64 {
	var sum float64
	var n int
	for _, col := range slices.Sorted(maps.Keys(f1)) {
		s2, ok := f2[col]
		if !ok {
			continue
		}
		s1 := f1[col]
		score := lengthRatio(s1.Length, s2.Length)
		if s1.First == s2.First {
			score += 0.5
		}
		if s1.Last == s2.Last {
			score += 0.5
		}
		sum += score / 2
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
