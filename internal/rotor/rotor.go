// Package rotor provides the rotor component of the Enigma machine: wiring
// permutations, notch detection, and the ring/position displacement math,
// indexed by the fixed historical rotor inventory (I..VIII, Beta, Gamma).
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package rotor

import (
	"fmt"

	"github.com/go-enigma/cracker/internal/charmap"
)

// Tag identifies a rotor within the historical inventory.
type Tag string

const (
	I     Tag = "I"
	II    Tag = "II"
	III   Tag = "III"
	IV    Tag = "IV"
	V     Tag = "V"
	VI    Tag = "VI"
	VII   Tag = "VII"
	VIII  Tag = "VIII"
	Beta  Tag = "Beta"
	Gamma Tag = "Gamma"
)

// spec describes the immutable wiring of one rotor tag.
type spec struct {
	wiring  string
	notches []rune
	thin    bool
}

// registry holds the historical wiring tables. Wiring strings are the
// standard Enigma I/M3/M4 permutations; notch letters are the display
// position at which the rotor induces a step of its left neighbour on
// the next key press. Thin rotors (Beta, Gamma) never step and never
// carry a neighbour.
var registry = map[Tag]spec{
	I:     {wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", notches: []rune{'Q'}},
	II:    {wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", notches: []rune{'E'}},
	III:   {wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", notches: []rune{'V'}},
	IV:    {wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", notches: []rune{'J'}},
	V:     {wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", notches: []rune{'Z'}},
	VI:    {wiring: "JPGVOUMFYQBENHZRDKASXLICTW", notches: []rune{'Z', 'M'}},
	VII:   {wiring: "NZJHGRCXMYSWBOUFAIVLPEKQDT", notches: []rune{'Z', 'M'}},
	VIII:  {wiring: "FKQHTLXOCBJSPDZRAMEWNIUYGV", notches: []rune{'Z', 'M'}},
	Beta:  {wiring: "LEYJVCNIXWPBQMDRTAKZGFUHOS", thin: true},
	Gamma: {wiring: "FSOKANUERHMBTIYCWLQPZXVGJD", thin: true},
}

// Known reports whether tag is a recognized rotor identifier.
func Known(tag Tag) bool {
	_, ok := registry[tag]
	return ok
}

// IsThin reports whether tag is one of the non-stepping M4 thin rotors.
func IsThin(tag Tag) bool {
	return registry[tag].thin
}

// Rotor is a single configured rotor: its wiring, current display
// position, and ring setting.
type Rotor struct {
	tag         Tag
	forwardMap  [charmap.Size]int
	backwardMap [charmap.Size]int
	notches     map[int]bool
	thin        bool
	position    int
	ringSetting int
}

// New builds a rotor for the given historical tag with the supplied ring
// setting and initial display position (both in [0, 26)).
func New(tag Tag, ringSetting, position int) (*Rotor, error) {
	s, ok := registry[tag]
	if !ok {
		return nil, fmt.Errorf("unknown rotor identifier %q", tag)
	}

	r := &Rotor{
		tag:         tag,
		notches:     make(map[int]bool, len(s.notches)),
		thin:        s.thin,
		ringSetting: charmap.Mod(ringSetting),
		position:    charmap.Mod(position),
	}

	wiring := []rune(s.wiring)
	if len(wiring) != charmap.Size {
		return nil, fmt.Errorf("rotor %q wiring length %d, want %d", tag, len(wiring), charmap.Size)
	}
	used := make([]bool, charmap.Size)
	for i, w := range wiring {
		out, err := charmap.RuneToLetter(w)
		if err != nil {
			return nil, fmt.Errorf("rotor %q: %w", tag, err)
		}
		if used[out] {
			return nil, fmt.Errorf("rotor %q: duplicate output character %c in wiring", tag, w)
		}
		used[out] = true
		r.forwardMap[i] = int(out)
		r.backwardMap[out] = i
	}

	for _, n := range s.notches {
		idx, err := charmap.RuneToLetter(n)
		if err != nil {
			return nil, fmt.Errorf("rotor %q: invalid notch %w", tag, err)
		}
		r.notches[int(idx)] = true
	}

	return r, nil
}

// Tag returns the rotor's historical identifier.
func (r *Rotor) Tag() Tag { return r.tag }

// Thin reports whether this rotor is a non-stepping M4 thin rotor.
func (r *Rotor) Thin() bool { return r.thin }

// Forward passes a signal right-to-left through the rotor's wiring,
// applying the (position - ringSetting) displacement on entry and its
// inverse on exit.
func (r *Rotor) Forward(in int) int {
	adjusted := charmap.Mod(in + r.position - r.ringSetting)
	out := r.forwardMap[adjusted]
	return charmap.Mod(out - r.position + r.ringSetting)
}

// Backward passes a signal left-to-right through the rotor's inverse
// wiring, with the same displacement convention as Forward.
func (r *Rotor) Backward(in int) int {
	adjusted := charmap.Mod(in + r.position - r.ringSetting)
	out := r.backwardMap[adjusted]
	return charmap.Mod(out - r.position + r.ringSetting)
}

// IsAtNotch reports whether the rotor's current display position sits at
// one of its turnover notches. Thin rotors are never at a notch: they
// never induce stepping of a neighbour.
func (r *Rotor) IsAtNotch() bool {
	if r.thin {
		return false
	}
	return r.notches[r.position]
}

// Step advances the rotor's display position by one. Thin rotors ignore
// Step calls since they never participate in stepping.
func (r *Rotor) Step() {
	if r.thin {
		return
	}
	r.position = charmap.Mod(r.position + 1)
}

// Position returns the current display position.
func (r *Rotor) Position() int { return r.position }

// SetPosition sets the current display position, wrapping into [0, 26).
func (r *Rotor) SetPosition(pos int) { r.position = charmap.Mod(pos) }

// RingSetting returns the configured ring setting.
func (r *Rotor) RingSetting() int { return r.ringSetting }

// Clone returns an independent copy of the rotor.
func (r *Rotor) Clone() *Rotor {
	clone := *r
	clone.notches = make(map[int]bool, len(r.notches))
	for k, v := range r.notches {
		clone.notches[k] = v
	}
	return &clone
}
