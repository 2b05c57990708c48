// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sarray

import "math"

// maxTextLen bounds the text length so that positions and the sentinel fit
// in the int32 index space used throughout the package.
const maxTextLen = math.MaxInt32 - 2

// encodeText maps an input byte string to the sentinel-terminated integer
// sequence S described by the text encoder: each byte becomes its unsigned
// value plus one, and a trailing 0 acts as the sentinel, which compares
// strictly less than every mapped byte value.
func encodeText(text []byte) []int32 {
	s := make([]int32, len(text)+1)
	for i, c := range text {
		s[i] = int32(c) + 1
	}
	s[len(text)] = 0
	return s
}

// encodePattern maps a search pattern using the same byte->int32 scheme as
// encodeText, without a sentinel.
func encodePattern(pattern []byte) []int32 {
	p := make([]int32, len(pattern))
	for i, c := range pattern {
		p[i] = int32(c) + 1
	}
	return p
}
