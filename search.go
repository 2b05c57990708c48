// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sarray

// Search returns every 0-based position in the original text where pattern
// occurs, in unspecified order. An empty pattern returns an empty result;
// Search never errors.
//
// The lookup is the standard Manber-Myers binary search, accelerated by
// the enhanced LCP table: at each step the already-known match lengths
// against the current low/high bounds (Llen, Hlen) are compared against
// the precomputed range-LCPs of [low, mid] and [mid, high] so that most
// steps tighten the bounds without re-comparing any text the previous
// steps already matched.
func (a *SuffixArray) Search(pattern []byte) []int {
	if len(pattern) == 0 {
		return []int{}
	}
	p := encodePattern(pattern)
	m := len(a.sa)
	n := len(p)

	matchLen := func(suffixStart int32, from int) int {
		i := from
		for i < n && int(suffixStart)+i < m && a.s[int(suffixStart)+i] == p[i] {
			i++
		}
		return i
	}

	low, high := 0, m-1
	Llen := matchLen(a.sa[low], 0)
	Hlen := matchLen(a.sa[high], 0)

	hit := -1
	switch {
	case Llen == n:
		hit = low
	case Hlen == n:
		hit = high
	}

	for hit == -1 && low+1 < high {
		mid := (low + high) / 2
		lcpL := int(rangeLCP(a.lcp, m, low, mid))
		lcpH := int(rangeLCP(a.lcp, m, mid, high))

		switch {
		case Llen <= lcpH && lcpH < Hlen:
			// mid parts from high before the pattern does, so mid sorts
			// below the pattern and matches it for lcpH symbols: the
			// better bound is between mid and high.
			low = mid
			Llen = lcpH
		case Llen <= Hlen && Hlen < lcpH:
			// mid shares more with high than high does with the pattern:
			// mid matches the pattern exactly as far as high does.
			high = mid
		case Hlen <= lcpL && lcpL < Llen:
			high = mid
			Hlen = lcpL
		case Hlen <= Llen && Llen < lcpL:
			low = mid
		default:
			matches := Llen
			if Hlen > matches {
				matches = Hlen
			}
			matches = matchLen(a.sa[mid], matches)
			switch {
			case matches == n:
				hit = mid
			case a.s[int(a.sa[mid])+matches] < p[matches]:
				low = mid
				Llen = matches
			default:
				high = mid
				Hlen = matches
			}
		}
	}

	if hit == -1 {
		return []int{}
	}
	return a.expand(hit, n)
}

// expand collects every occurrence neighboring a hit at suffix-array index
// h: the hit itself, then suffixes to either side for as long as their
// adjacent LCP with their neighbor is at least patLen, since that is
// exactly the condition under which they still share the full pattern as a
// prefix.
func (a *SuffixArray) expand(h, patLen int) []int {
	matches := []int{int(a.sa[h])}
	for i := h; i > 0 && int(a.lcp[i]) >= patLen; i-- {
		matches = append(matches, int(a.sa[i-1]))
	}
	for i := h + 1; i < len(a.sa) && int(a.lcp[i]) >= patLen; i++ {
		matches = append(matches, int(a.sa[i]))
	}
	return matches
}
