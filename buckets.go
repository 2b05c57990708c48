// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sarray

// bucketIndex holds the per-symbol bucket boundaries used by the induced
// sorter: counts is the frequency of each symbol, and heads/tails are
// mutable working cursors that get reset and walked during each induce
// pass. Symbols are addressed relative to minSym so that buckets can be
// indexed by a plain slice instead of a map, which is sufficient because
// every alphabet this package ever sorts over (raw bytes, or LMS names on
// a recursive call) is a dense integer range no larger than the sequence
// itself.
type bucketIndex struct {
	minSym int32
	counts []int32
	heads  []int32
	tails  []int32
}

// newBucketIndex computes symbol frequencies for s and builds the initial
// head/tail cursors.
func newBucketIndex(s []int32) *bucketIndex {
	minSym, maxSym := s[0], s[0]
	for _, v := range s {
		if v < minSym {
			minSym = v
		}
		if v > maxSym {
			maxSym = v
		}
	}
	alphaSize := maxSym - minSym + 1
	counts := make([]int32, alphaSize)
	for _, v := range s {
		counts[v-minSym]++
	}
	b := &bucketIndex{
		minSym: minSym,
		counts: counts,
		heads:  make([]int32, alphaSize),
		tails:  make([]int32, alphaSize),
	}
	b.resetHeads()
	b.resetTails()
	return b
}

// bucket maps a symbol to its bucket id.
func (b *bucketIndex) bucket(sym int32) int32 {
	return sym - b.minSym
}

// resetHeads restores heads[i] to the cumulative count before symbol i, the
// write cursor used by the L-pass.
func (b *bucketIndex) resetHeads() {
	var offset int32
	for i, n := range b.counts {
		b.heads[i] = offset
		offset += n
	}
}

// resetTails restores tails[i] to head+count-1 for symbol i, the write
// cursor used by the S-pass and by both LMS seeding modes.
func (b *bucketIndex) resetTails() {
	var offset int32
	for i, n := range b.counts {
		offset += n
		b.tails[i] = offset - 1
	}
}
