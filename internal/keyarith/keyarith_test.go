// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package keyarith

import (
	"testing"

	"github.com/go-enigma/cracker/internal/rotor"
)

func TestIncreaseKeyEmpty(t *testing.T) {
	if got := IncreaseKey("", []rotor.Tag{rotor.I, rotor.II, rotor.III}); got != "" {
		t.Errorf("IncreaseKey(\"\") = %q, want empty", got)
	}
}

func TestDecreaseKeyEmpty(t *testing.T) {
	if got := DecreaseKey("", []rotor.Tag{rotor.I, rotor.II, rotor.III}); got != "" {
		t.Errorf("DecreaseKey(\"\") = %q, want empty", got)
	}
}

// A single-letter key has no neighbour to carry into: it is a plain
// A..Z rollover regardless of rotor notch positions.
func TestSingleLetterKeyPlainRollover(t *testing.T) {
	if got := IncreaseKey("Z", []rotor.Tag{rotor.I}); got != "A" {
		t.Errorf("IncreaseKey(Z) = %q, want A", got)
	}
	if got := IncreaseKey("M", []rotor.Tag{rotor.I}); got != "N" {
		t.Errorf("IncreaseKey(M) = %q, want N", got)
	}
	if got := DecreaseKey("A", []rotor.Tag{rotor.I}); got != "Z" {
		t.Errorf("DecreaseKey(A) = %q, want Z", got)
	}
}

// Rotor I's notch is Q: stepping the rightmost rotor from Q to R must
// carry into its left neighbour.
func TestIncreaseKeyCarriesAtNotch(t *testing.T) {
	rotors := []rotor.Tag{rotor.II, rotor.I}
	got := IncreaseKey("AQ", rotors)
	if got != "BR" {
		t.Errorf("IncreaseKey(AQ) = %q, want BR", got)
	}
}

func TestIncreaseKeyNoCarryAwayFromNotch(t *testing.T) {
	rotors := []rotor.Tag{rotor.II, rotor.I}
	got := IncreaseKey("AC", rotors)
	if got != "AD" {
		t.Errorf("IncreaseKey(AC) = %q, want AD", got)
	}
}

// The double-step anomaly: when the middle rotor sits at its own
// notch, incrementing the rightmost rotor carries into BOTH the
// middle rotor and, through it, the leftmost rotor.
func TestIncreaseKeyDoubleStepAnomaly(t *testing.T) {
	rotors := []rotor.Tag{rotor.I, rotor.II, rotor.III}
	// Middle rotor (II) sits at its own notch E; rightmost (III) is one
	// short of its notch V.
	got := IncreaseKey("AEU", rotors)
	if got != "BFV" {
		t.Errorf("IncreaseKey(AEU) = %q, want BFV", got)
	}
}

func TestDecreaseKeyUndoesDoubleStepAnomaly(t *testing.T) {
	rotors := []rotor.Tag{rotor.I, rotor.II, rotor.III}
	got := DecreaseKey("BFV", rotors)
	if got != "AEU" {
		t.Errorf("DecreaseKey(BFV) = %q, want AEU", got)
	}
}

// A thin rotor immediately to the left of a carrying position blocks
// the carry, mirroring the M4 thin rotor's refusal to step.
func TestThinRotorBlocksCarry(t *testing.T) {
	rotors := []rotor.Tag{rotor.I, rotor.Beta, rotor.III}
	got := IncreaseKey("AAV", rotors)
	if got != "AAW" {
		t.Errorf("IncreaseKey(AAV) = %q, want AAW (thin Beta blocks carry into itself)", got)
	}
}

func TestThinRotorBlocksDoubleCarry(t *testing.T) {
	rotors := []rotor.Tag{rotor.Beta, rotor.I, rotor.III}
	got := IncreaseKey("AQU", rotors)
	if got != "AQV" {
		t.Errorf("IncreaseKey(AQU) = %q, want AQV (thin Beta blocks double carry reaching it)", got)
	}
}

// DecreaseKey(IncreaseKey(k, rotors), rotors) == k for reachable keys
// across a spread of rotor combinations, including notch and
// double-step boundaries and thin-rotor contexts.
func TestIncreaseDecreaseSymmetry(t *testing.T) {
	combos := [][]rotor.Tag{
		{rotor.III},
		{rotor.II, rotor.I},
		{rotor.I, rotor.II, rotor.III},
		{rotor.V, rotor.VI, rotor.VII},
		{rotor.Beta, rotor.I, rotor.III},
		{rotor.I, rotor.Gamma, rotor.III, rotor.IV},
	}

	for _, rotors := range combos {
		n := len(rotors)
		keys := allKeysOfLength(n)
		for _, k0 := range keys {
			// Two steps from any key land on a key that stepping reaches.
			k := IncreaseKey(IncreaseKey(k0, rotors), rotors)
			up := IncreaseKey(k, rotors)
			down := DecreaseKey(up, rotors)
			if down != k {
				t.Errorf("rotors=%v: DecreaseKey(IncreaseKey(%q)) = %q, want %q", rotors, k, down, k)
			}
		}
	}
}

// allKeysOfLength enumerates every key of length n for small n, or a
// representative sample of boundary positions for larger n.
func allKeysOfLength(n int) []string {
	if n == 1 {
		var out []string
		for c := byte('A'); c <= 'Z'; c++ {
			out = append(out, string([]byte{c}))
		}
		return out
	}
	if n == 2 {
		var out []string
		for a := byte('A'); a <= 'Z'; a++ {
			for b := byte('A'); b <= 'Z'; b++ {
				out = append(out, string([]byte{a, b}))
			}
		}
		return out
	}

	// For longer keys, sample every letter in the rightmost two
	// positions against a few fixed prefixes, which is enough to
	// exercise every notch and double-step boundary for n <= 4.
	var out []string
	prefixes := []string{}
	for i := 0; i < n-2; i++ {
		prefixes = append(prefixes, "A")
	}
	prefix := ""
	for _, p := range prefixes {
		prefix += p
	}
	for a := byte('A'); a <= 'Z'; a++ {
		for b := byte('A'); b <= 'Z'; b++ {
			out = append(out, prefix+string([]byte{a, b}))
		}
	}
	return out
}

func TestIncreaseKeyWithoutRotorContext(t *testing.T) {
	// Ring recovery advances a single display position with no rotor
	// context: behaves as a plain rollover.
	if got := IncreaseKey("Y", nil); got != "Z" {
		t.Errorf("IncreaseKey(Y, nil) = %q, want Z", got)
	}
	if got := IncreaseKey("Z", nil); got != "A" {
		t.Errorf("IncreaseKey(Z, nil) = %q, want A", got)
	}
}
