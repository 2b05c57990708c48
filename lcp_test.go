// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sarray

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// naiveLCP computes the longest common prefix of the two suffixes starting
// at a and b by direct character comparison.
func naiveLCP(s []int32, a, b int32) int32 {
	var k int32
	for int(a+k) < len(s) && int(b+k) < len(s) && s[a+k] == s[b+k] {
		k++
	}
	return k
}

func TestKasaiLCPCorrectness(t *testing.T) {
	texts := []string{"mississippi", "banana", "aaaa", "abcd", "ababab", "abracadabra"}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			s := encodeText([]byte(text))
			sa := construct(s)
			lcp := buildLCP(s, sa)
			for i := 1; i < len(s); i++ {
				want := naiveLCP(s, sa[i-1], sa[i])
				assert.Equal(t, want, lcp[i], "LCP mismatch at i=%d", i)
			}
			assert.Equal(t, int32(0), lcp[0])
		})
	}
}

// naiveRangeLCP computes min(LCP[i+1..j]) directly from the adjacent-LCP
// prefix of lcp, independent of the midpoint table under test.
func naiveRangeLCP(lcp []int32, i, j int) int32 {
	min := lcp[i+1]
	for k := i + 2; k <= j; k++ {
		if lcp[k] < min {
			min = lcp[k]
		}
	}
	return min
}

// walkRecursiveSplits visits exactly the (i, j) intervals that a binary
// search rooted at (0, m-1) can ever query: the same top-down midpoint
// splits fillRangeLCP used to populate the table. rangeLCP's slot scheme
// (indexing purely by floor((i+j)/2)) only guarantees a correct answer for
// intervals in this tree; an arbitrary (low, high) pair outside of it may
// collide with an unrelated interval's slot.
func walkRecursiveSplits(i, j int, visit func(i, j int)) {
	if j-i < 2 {
		return
	}
	visit(i, j)
	mid := (i + j) / 2
	walkRecursiveSplits(i, mid, visit)
	walkRecursiveSplits(mid, j, visit)
}

func TestRangeLCPCorrectness(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := 2 + r.Intn(60)
		text := make([]byte, n)
		for i := range text {
			text[i] = byte('a' + r.Intn(4))
		}
		s := encodeText(text)
		sa := construct(s)
		lcp := buildLCP(s, sa)
		m := len(s)

		walkRecursiveSplits(0, m-1, func(i, j int) {
			got := rangeLCP(lcp, m, i, j)
			want := naiveRangeLCP(lcp, i, j)
			assert.Equal(t, want, got, "RLCP(%d,%d) mismatch", i, j)
		})
	}
}
