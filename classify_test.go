// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		text    string
		typeStr string // S/L per position of the sentinel-terminated sequence
		lms     []int32
	}{
		"banana": {
			text:    "banana",
			typeStr: "LSLSLLS",
			lms:     []int32{1, 3, 6},
		},
		"aaaa": {
			text:    "aaaa",
			typeStr: "LLLLS",
			lms:     []int32{4},
		},
		"single char": {
			text:    "a",
			typeStr: "LS",
			lms:     []int32{1},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := encodeText([]byte(tc.text))
			typ, lms := classify(s)
			for i, want := range tc.typeStr {
				got := typ.get(i)
				assert.Equal(t, want == 'S', got, "type mismatch at %d", i)
			}
			assert.Equal(t, tc.lms, lms)
		})
	}
}
