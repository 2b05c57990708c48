// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sarray

// empty marks an unfilled slot of a working suffix array during induced
// sorting. Position 0 is a valid suffix, so it cannot double as the empty
// marker.
const empty int32 = -1

// seedLMSByPosition is induced-sort seeding Mode A: place the LMS positions
// into the tails of their buckets in the order they appear in lms
// (ascending by position). This is the seeding used before the first,
// exploratory induced sort.
func seedLMSByPosition(s []int32, sa []int32, lms []int32, b *bucketIndex) {
	for i := range sa {
		sa[i] = empty
	}
	b.resetTails()
	for _, p := range lms {
		sym := b.bucket(s[p])
		sa[b.tails[sym]] = p
		b.tails[sym]--
	}
}

// seedLMSByRank is induced-sort seeding Mode B: walk the suffix array of
// the reduced string (order) from high index to low, placing each LMS
// position into the tail of its bucket. Because order already reflects the
// true lexicographic order of the LMS suffixes, this seeding yields the
// final placement for the second, conclusive induced sort.
func seedLMSByRank(s []int32, sa []int32, lms []int32, order []int32, b *bucketIndex) {
	for i := range sa {
		sa[i] = empty
	}
	b.resetTails()
	for i := len(order) - 1; i >= 0; i-- {
		p := lms[order[i]]
		sym := b.bucket(s[p])
		sa[b.tails[sym]] = p
		b.tails[sym]--
	}
}

// induceL fills in L-type suffixes left to right: whenever sa[i] names a
// position whose predecessor is L-type, the predecessor is written to the
// head of its own bucket.
func induceL(s []int32, sa []int32, t typeBits, b *bucketIndex) {
	b.resetHeads()
	for i := 0; i < len(sa); i++ {
		if sa[i] == empty || sa[i] == 0 {
			continue
		}
		j := sa[i] - 1
		if t.get(int(j)) {
			continue // predecessor is S-type
		}
		sym := b.bucket(s[j])
		sa[b.heads[sym]] = j
		b.heads[sym]++
	}
}

// induceS fills in S-type suffixes right to left, the mirror of induceL.
func induceS(s []int32, sa []int32, t typeBits, b *bucketIndex) {
	b.resetTails()
	for i := len(sa) - 1; i >= 0; i-- {
		if sa[i] == empty || sa[i] == 0 {
			continue
		}
		j := sa[i] - 1
		if !t.get(int(j)) {
			continue // predecessor is L-type
		}
		sym := b.bucket(s[j])
		sa[b.tails[sym]] = j
		b.tails[sym]--
	}
}
