// Package scoring provides index-of-coincidence and frequency analysis
// over alphabetic text.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package scoring

import "strings"

// IC computes the index of coincidence over the 26-letter alphabet:
// Σ n_c(n_c−1) / (N(N−1)), counting only 'A'..'Z' occurrences (case
// sensitive, matching the wire format's uppercase convention). Returns
// 0 when fewer than two letters are present.
func IC(text string) float64 {
	n := len(text)
	if n < 2 {
		return 0
	}

	var counts [26]int
	total := 0
	for _, c := range text {
		if c >= 'A' && c <= 'Z' {
			counts[c-'A']++
			total++
		}
	}
	if total < 2 {
		return 0
	}

	var sum float64
	for _, c := range counts {
		sum += float64(c * (c - 1))
	}
	return sum / float64(total*(total-1))
}

// Frequencies returns the relative frequency of each letter 'A'..'Z' in
// text (occurrences divided by len(text)) and the count of distinct
// letters observed at least once.
func Frequencies(text string) (map[rune]float64, int) {
	total := len(text)
	frequencies := make(map[rune]float64, 26)
	distinct := 0
	for _, letter := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		count := strings.Count(text, string(letter))
		if total > 0 {
			frequencies[letter] = float64(count) / float64(total)
		} else {
			frequencies[letter] = 0
		}
		if count > 0 {
			distinct++
		}
	}
	return frequencies, distinct
}
