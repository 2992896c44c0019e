// Package keyarith implements the notch-aware display-key odometer used by
// the ModifyKeys dictionary transform and ring recovery. It is
// distinct from the Enigma machine's own per-letter stepping: these
// functions advance or retreat the *initial* display by one position under
// the same double-stepping rules, without ever touching rotor wiring.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package keyarith

import "github.com/go-enigma/cracker/internal/rotor"

// notchLetters returns the turnover notch letters for a rotor tag, or nil
// for tags with no notch (the thin rotors Beta and Gamma).
func notchLetters(tag rotor.Tag) []byte {
	switch tag {
	case rotor.I:
		return []byte{'Q'}
	case rotor.II:
		return []byte{'E'}
	case rotor.III:
		return []byte{'V'}
	case rotor.IV:
		return []byte{'J'}
	case rotor.V:
		return []byte{'Z'}
	case rotor.VI, rotor.VII, rotor.VIII:
		return []byte{'Z', 'M'}
	default:
		return nil
	}
}

func isThinTag(tag rotor.Tag) bool {
	return tag == rotor.Beta || tag == rotor.Gamma
}

// atNotch reports whether letter c is one step past one of tag's notch
// letters, i.e. whether a rotor with tag has just turned over into c.
func atNotch(tag rotor.Tag, c byte) bool {
	for _, n := range notchLetters(tag) {
		if c == n+1 || (n == 'Z' && c == 'A') {
			return true
		}
	}
	return false
}

// ownNotch reports whether letter c sits exactly at one of tag's notch
// letters (used for the once-removed / double-step carry check).
func ownNotch(tag rotor.Tag, c byte) bool {
	for _, n := range notchLetters(tag) {
		if c == n {
			return true
		}
	}
	return false
}

func incByte(c byte) byte {
	if c == 'Z' {
		return 'A'
	}
	return c + 1
}

func decByte(c byte) byte {
	if c == 'A' {
		return 'Z'
	}
	return c - 1
}

// IncreaseKey advances key by one step under the stepping laws implied by
// rotors (ordered leftmost-first, same length as key). The rightmost
// position is fastest. A thin rotor (Beta/Gamma) immediately to the left
// of a position blocks carry into that position, mirroring the M4 thin
// rotor's non-stepping behaviour.
//
// With empty rotors, key is a plain odometer with no notch information:
// a position carries into its left neighbour only when it wraps from Z
// to A — this is what ring recovery relies on when it advances a single
// display position with no rotor context at all. A shorter non-empty
// rotors is matched against the rightmost positions of key, and no carry
// reaches a position that has no rotor.
func IncreaseKey(key string, rotors []rotor.Tag) string {
	if len(key) == 0 {
		return ""
	}

	k := []byte(key)
	last := len(k) - 1
	k[last] = incByte(k[last])

	if len(k) > 1 {
		rIdx := len(rotors) - 1
		var curTag rotor.Tag
		if rIdx >= 0 {
			curTag = rotors[rIdx]
		}
		carry := rIdx >= 0 && atNotch(curTag, k[last])

		var protorTag rotor.Tag
		pIdx := rIdx - 1
		doubleCarry := false
		if pIdx >= 0 {
			protorTag = rotors[pIdx]
			doubleCarry = ownNotch(protorTag, k[last-1])
		}

		switch {
		case rIdx < 0:
			// No rotor context at all: plain odometer carry on Z -> A.
			if k[last] == 'A' {
				rest := IncreaseKey(string(k[:last]), nil)
				k = append([]byte(rest), k[last])
			}
		case carry && len(rotors) >= 2 && !isThinTag(rotors[rIdx-1]):
			rest := IncreaseKey(string(k[:last]), rotors[:rIdx])
			k = append([]byte(rest), k[last])
		case doubleCarry && len(rotors) > 2 && !isThinTag(rotors[rIdx-2]):
			k2 := incByte(k[last-1])
			rest := IncreaseKey(string(k[:last-1]), rotors[:rIdx-1])
			k = append([]byte(rest), k2, k[last])
		}
	}

	return string(k)
}

// DecreaseKey undoes one IncreaseKey step. Double stepping makes
// IncreaseKey many-to-one: a key whose middle rotor sits at its own notch
// while the rightmost rotor is not one past its notch can only be a
// starting display, and it steps to the same key as an ordinary
// neighbour does. DecreaseKey returns the ordinary neighbour, so
// DecreaseKey(IncreaseKey(k)) == k for every key that stepping reaches,
// in stacks with at most three stepping rotors.
func DecreaseKey(key string, rotors []rotor.Tag) string {
	if len(key) == 0 {
		return ""
	}

	k := []byte(key)
	last := len(k) - 1
	before := k[last]
	k[last] = decByte(k[last])

	if len(k) > 1 {
		rIdx := len(rotors) - 1
		var curTag rotor.Tag
		if rIdx >= 0 {
			curTag = rotors[rIdx]
		}
		// Decrease carries when the letter *before* decrementing sat at
		// the notch-plus-one position (i.e. we are undoing the step that
		// crossed the notch).
		carry := rIdx >= 0 && atNotch(curTag, before)

		// The once-removed neighbour is still untouched here, so unlike
		// IncreaseKey's double-carry (which fires when it sits exactly at
		// its own notch, about to turn over) DecreaseKey must look one
		// step further: it fires when the neighbour sits one past its
		// notch and the rightmost rotor, after decrementing, sits one
		// past its own notch — the only position from which stepping
		// reaches a middle rotor resting on its notch.
		var protorTag rotor.Tag
		pIdx := rIdx - 1
		doubleCarry := false
		if pIdx >= 0 {
			protorTag = rotors[pIdx]
			doubleCarry = atNotch(protorTag, k[last-1]) && atNotch(curTag, k[last])
		}

		switch {
		case rIdx < 0:
			// No rotor context at all: plain odometer borrow on A -> Z.
			if k[last] == 'Z' {
				rest := DecreaseKey(string(k[:last]), nil)
				k = append([]byte(rest), k[last])
			}
		case carry && len(rotors) >= 2 && !isThinTag(rotors[rIdx-1]):
			rest := DecreaseKey(string(k[:last]), rotors[:rIdx])
			k = append([]byte(rest), k[last])
		case doubleCarry && len(rotors) > 2 && !isThinTag(rotors[rIdx-2]):
			k2 := decByte(k[last-1])
			rest := DecreaseKey(string(k[:last-1]), rotors[:rIdx-1])
			k = append([]byte(rest), k2, k[last])
		}
	}

	return string(k)
}
