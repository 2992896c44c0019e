// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package configstream

import "strings"

// joinRotors renders a rotor ordering as the space-joined identifier
// string the wire Configuration format expects.
func joinRotors(ordering []string) string {
	return strings.Join(ordering, " ")
}

// indexToKey renders ki as an R-letter uppercase key, 'A' for digit 0,
// rightmost letter fastest-changing — a plain base-26 positional
// encoding with the most significant digit leftmost.
func indexToKey(ki, r int) string {
	letters := make([]byte, r)
	for i := r - 1; i >= 0; i-- {
		letters[i] = byte('A' + ki%26)
		ki /= 26
	}
	return string(letters)
}

// allPlugPairs enumerates all 325 unordered two-letter pairs over
// 'A'..'Z' in the order A-B, A-C, ..., A-Z, B-C, ..., Y-Z.
func allPlugPairs() [][2]byte {
	pairs := make([][2]byte, 0, 325)
	for a := byte('A'); a <= 'Y'; a++ {
		for b := a + 1; b <= 'Z'; b++ {
			pairs = append(pairs, [2]byte{a, b})
		}
	}
	return pairs
}
