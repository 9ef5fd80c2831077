// SPDX-License-Identifier: EPL-2.0

package dxx

import (
	"strconv"
	"strings"
)

// asciiPacked returns the printable ASCII bytes of b in their original order.
// Bytes outside 0x20..0x7E are dropped, not replaced, so the characters after
// them move up and count toward the truncation width.
func asciiPacked(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))

	for _, c := range b {
		if c >= 0x20 && c <= 0x7e {
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// asciiPrefix filters b and keeps at most n characters.
func asciiPrefix(b []byte, n int) string {
	s := asciiPacked(b)
	if len(s) > n {
		s = s[:n]
	}

	return strings.TrimSpace(s)
}

func asciiFloat(b []byte, n int) (float64, error) {
	return strconv.ParseFloat(asciiPrefix(b, n), 64)
}

func asciiInt(b []byte, n int) (int, error) {
	return strconv.Atoi(asciiPrefix(b, n))
}
