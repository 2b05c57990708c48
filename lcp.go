// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sarray

// buildLCP builds the enhanced LCP structure described in the data model:
// a prefix of length m holding adjacent LCPs (Kasai's algorithm), and a
// suffix of length m-1 holding, at slot m+floor((i+j)/2), the LCP of every
// interval [i, j] that the LCP-accelerated binary search in search.go will
// ever query.
func buildLCP(s []int32, sa []int32) []int32 {
	m := len(s)
	lcp := make([]int32, 2*m-1)
	if m <= 1 {
		return lcp
	}

	rank := make([]int32, m)
	for i, p := range sa {
		rank[p] = int32(i)
	}

	var k int32
	for i := 0; i < m; i++ {
		if int(rank[i]) == m-1 {
			k = 0
			continue
		}
		j := sa[rank[i]+1]
		for int(i)+int(k) < m && int(j)+int(k) < m && s[int(i)+int(k)] == s[int(j)+int(k)] {
			k++
		}
		lcp[rank[i]+1] = k
		if k > 0 {
			k--
		}
	}
	lcp[0] = 0

	fillRangeLCP(lcp, m)
	return lcp
}

// fillRangeLCP recursively fills the midpoint-indexed range table following
// the recurrence in the data model: width-1 ranges need no storage (they
// are just an adjacent LCP entry, fetched directly by rangeLCP), width-2
// ranges are computed from two adjacent LCPs, width-3 ranges combine one
// adjacent LCP with the width-2 range to their right, and every wider
// range splits at its own midpoint. Because a
// binary search step always queries RLCP(low, mid) and RLCP(mid, high) for
// mid = floor((low+high)/2), this recursion visits exactly the slots a
// search will ever look up.
func fillRangeLCP(lcp []int32, m int) {
	if m < 2 {
		return
	}
	var rec func(i, j int) int32
	rec = func(i, j int) int32 {
		var res int32
		switch j - i {
		case 1:
			return lcp[j]
		case 2:
			res = min32(lcp[i+1], lcp[j])
		case 3:
			res = min32(lcp[i+1], rec(i+1, j))
		default:
			mid := (i + j) / 2
			res = min32(rec(i, mid), rec(mid, j))
		}
		lcp[m+(i+j)/2] = res
		return res
	}
	rec(0, m-1)
}

// rangeLCP returns RLCP(i,j) = min(LCP[i+1..j]) for 0 <= i < j < m, reading
// straight from the adjacent LCP array for width-1 ranges and from the
// precomputed midpoint table otherwise.
func rangeLCP(lcp []int32, m, i, j int) int32 {
	if i+1 == j {
		return lcp[j]
	}
	return lcp[m+(i+j)/2]
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
