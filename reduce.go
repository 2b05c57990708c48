// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sarray

import "sort"

// lmsSubstringsEqual reports whether the LMS substrings starting at p and q
// are identical: equal length and symbol-wise equal. The LMS substring
// runs from its start position up to and including the next LMS position
// (or the end of s for the final one), so the scan simply advances both
// cursors together until both land on a later LMS position at the same
// offset.
func lmsSubstringsEqual(s []int32, t typeBits, p, q int32) bool {
	m := len(s)
	for k := int32(0); ; k++ {
		pi, qi := p+k, q+k
		if int(pi) >= m || int(qi) >= m || s[pi] != s[qi] {
			return false
		}
		pIsLMS := k > 0 && isLMS(t, m, pi)
		qIsLMS := k > 0 && isLMS(t, m, qi)
		if pIsLMS && qIsLMS {
			return true
		}
		if pIsLMS != qIsLMS {
			return false
		}
	}
}

// nameLMSSuffixes scans sa (after Mode-A induced sorting) for LMS
// positions in sorted order and assigns each a name: the same name as the
// previous LMS substring if they are equal, otherwise a new, strictly
// larger name. names[k] is the name of the k-th LMS suffix in text order
// (indexed by its position in lms), matching the layout S1 needs.
// allUnique reports whether every LMS substring received a distinct name.
func nameLMSSuffixes(s []int32, t typeBits, sa []int32, lms []int32) (names []int32, allUnique bool) {
	m := len(s)
	// lms is ascending, so a position's index within it (its rank in text
	// order) is found by binary search rather than a reverse-lookup map.
	rankOf := func(p int32) int32 {
		return int32(sort.Search(len(lms), func(i int) bool { return lms[i] >= p }))
	}

	names = make([]int32, len(lms))
	var name int32 = -1
	var prev int32 = -1
	for _, p := range sa {
		if !isLMS(t, m, p) {
			continue
		}
		if prev == -1 || !lmsSubstringsEqual(s, t, prev, p) {
			name++
		}
		names[rankOf(p)] = name
		prev = p
	}
	allUnique = int(name+1) == len(lms)
	return names, allUnique
}

// invertPermutation builds inv such that inv[names[k]] = k, turning the
// rank-by-LMS-index array produced when all LMS names are distinct into
// the sorted order of LMS suffixes (the shape Mode B seeding expects).
func invertPermutation(names []int32) []int32 {
	inv := make([]int32, len(names))
	for k, r := range names {
		inv[r] = int32(k)
	}
	return inv
}

// construct builds the suffix array of s by the SA-IS algorithm: seed LMS
// suffixes, induce the rest, name the LMS substrings, and either read off
// their order directly (all names distinct) or recurse on the reduced
// string of names. Each recursion operates over an alphabet of names,
// which is at most half the size of its input, so the recursion depth and
// total work are both linear in the original text length.
func construct(s []int32) []int32 {
	m := len(s)
	if m <= 1 {
		sa := make([]int32, m)
		return sa
	}

	t, lms := classify(s)
	b := newBucketIndex(s)
	sa := make([]int32, m)

	seedLMSByPosition(s, sa, lms, b)
	if len(lms) > 1 {
		induceL(s, sa, t, b)
		induceS(s, sa, t, b)

		names, allUnique := nameLMSSuffixes(s, t, sa, lms)

		var order []int32
		if allUnique {
			order = invertPermutation(names)
		} else {
			order = construct(names)
		}
		seedLMSByRank(s, sa, lms, order, b)
	}
	induceL(s, sa, t, b)
	induceS(s, sa, t, b)
	return sa
}
