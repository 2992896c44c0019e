// Package reflector provides the reflector (UKW) component of the Enigma
// machine, indexed by the fixed historical reflector inventory.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package reflector

import (
	"fmt"

	"github.com/go-enigma/cracker/internal/charmap"
)

// Tag identifies a reflector within the historical inventory.
type Tag string

const (
	B     Tag = "B"
	C     Tag = "C"
	BThin Tag = "B_thin"
	CThin Tag = "C_thin"
)

var wirings = map[Tag]string{
	B:     "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	C:     "FVPJIAOYEDRZXWGCTKUQSBNMHL",
	BThin: "ENKQAUYWJICOPBLMDXZVFTHRGS",
	CThin: "RDOBJNTKVEHMLFCWZAXGYIPSUQ",
}

// Known reports whether tag is a recognized reflector identifier.
func Known(tag Tag) bool {
	_, ok := wirings[tag]
	return ok
}

// Reflector is a configured reflector: a fixed involution on the alphabet.
type Reflector struct {
	tag     Tag
	mapping [charmap.Size]int
}

// New builds the reflector for the given historical tag, validating that
// its wiring is a true involution (reciprocal, no self-mapping).
func New(tag Tag) (*Reflector, error) {
	wiring, ok := wirings[tag]
	if !ok {
		return nil, fmt.Errorf("unknown reflector identifier %q", tag)
	}

	runes := []rune(wiring)
	if len(runes) != charmap.Size {
		return nil, fmt.Errorf("reflector %q wiring length %d, want %d", tag, len(runes), charmap.Size)
	}

	r := &Reflector{tag: tag}
	for i, w := range runes {
		out, err := charmap.RuneToLetter(w)
		if err != nil {
			return nil, fmt.Errorf("reflector %q: %w", tag, err)
		}
		if int(out) == i {
			in, _ := charmap.LetterToRune(charmap.Letter(i))
			return nil, fmt.Errorf("reflector %q: character %c maps to itself", tag, in)
		}
		r.mapping[i] = int(out)
	}

	for i, out := range r.mapping {
		if r.mapping[out] != i {
			return nil, fmt.Errorf("reflector %q: non-reciprocal mapping at index %d", tag, i)
		}
	}

	return r, nil
}

// Tag returns the reflector's historical identifier.
func (r *Reflector) Tag() Tag { return r.tag }

// Reflect performs the reflection.
func (r *Reflector) Reflect(in int) int {
	return r.mapping[in]
}

// Clone returns an independent copy of the reflector.
func (r *Reflector) Clone() *Reflector {
	clone := *r
	return &clone
}
