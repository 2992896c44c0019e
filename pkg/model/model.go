// Package model provides the rotor-ordering enumeration over a machine
// family description (the allowed rotor inventory, rotor count,
// duplicate policy, and reflector inventory).
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package model

import (
	"github.com/go-enigma/cracker/internal/cfgio"
)

// RotorOrderings produces every length-RotorsCount ordered sequence
// drawn from model.Rotors, in lexicographic order over the positions of
// each rotor identifier within model.Rotors (an odometer over rotor
// indices, rightmost-fastest). If model.Duplicates is false, sequences
// with a repeated identifier are filtered out after generation rather
// than skipped during it, matching the source's generate-then-filter
// behaviour.
func RotorOrderings(m cfgio.Model) [][]string {
	if len(m.Rotors) == 0 || m.RotorsCount <= 0 {
		return nil
	}

	n := len(m.Rotors)
	total := 1
	for i := 0; i < m.RotorsCount; i++ {
		total *= n
	}

	var orderings [][]string
	odometer := make([]int, m.RotorsCount)
	for step := 0; step < total; step++ {
		ordering := make([]string, m.RotorsCount)
		for i, idx := range odometer {
			ordering[i] = m.Rotors[idx]
		}
		if m.Duplicates || !hasDuplicate(ordering) {
			orderings = append(orderings, ordering)
		}
		incrementOdometer(odometer, n)
	}
	return orderings
}

// incrementOdometer advances a base-n odometer by one, rightmost digit
// fastest.
func incrementOdometer(digits []int, base int) {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < base {
			return
		}
		digits[i] = 0
	}
}

func hasDuplicate(ordering []string) bool {
	seen := make(map[string]bool, len(ordering))
	for _, r := range ordering {
		if seen[r] {
			return true
		}
		seen[r] = true
	}
	return false
}

// CountBruteforce returns (total configuration count, machine-rebuild
// count) for a full Brute enumeration over m: the number of (rotor
// ordering, reflector, key) triples, and the number of (rotor ordering,
// reflector) pairs that each require constructing a fresh Machine.
func CountBruteforce(m cfgio.Model) (total int, machines int) {
	var rotorCount int
	if m.Duplicates {
		rotorCount = 1
		for i := 0; i < m.RotorsCount; i++ {
			rotorCount *= len(m.Rotors)
		}
	} else {
		rotorCount = 1
		for i := 0; i < m.RotorsCount; i++ {
			rotorCount *= len(m.Rotors) - i
		}
	}
	keysCount := 1
	for i := 0; i < m.RotorsCount; i++ {
		keysCount *= 26
	}
	reflectorsCount := len(m.Reflectors)
	machines = rotorCount * reflectorsCount
	total = machines * keysCount
	return total, machines
}
