// Package plugboard provides the plugboard (Steckerbrett) component of the
// Enigma machine: a set of disjoint reciprocal letter pairs applied before
// and after the rotor stack.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package plugboard

import (
	"fmt"
	"strings"

	"github.com/go-enigma/cracker/internal/charmap"
)

// MaxPairs is the maximum number of disjoint pairs a 26-letter plugboard
// can hold.
const MaxPairs = charmap.Size / 2

// Plugboard implements reciprocal character swapping over disjoint pairs.
type Plugboard struct {
	mapping [charmap.Size]int
	wired   [charmap.Size]bool
}

// New creates an empty plugboard (identity mapping).
func New() *Plugboard {
	p := &Plugboard{}
	for i := range p.mapping {
		p.mapping[i] = i
	}
	return p
}

// AddPair wires a reciprocal swap between two letters. It fails if either
// letter is already wired or the letters coincide, preserving the
// disjoint-pairs invariant.
func (p *Plugboard) AddPair(a, b rune) error {
	ia, err := charmap.RuneToLetter(a)
	if err != nil {
		return fmt.Errorf("invalid plugboard letter: %w", err)
	}
	ib, err := charmap.RuneToLetter(b)
	if err != nil {
		return fmt.Errorf("invalid plugboard letter: %w", err)
	}
	if ia == ib {
		return fmt.Errorf("cannot pair letter %c with itself", a)
	}
	if p.wired[ia] {
		return fmt.Errorf("letter %c is already paired", a)
	}
	if p.wired[ib] {
		return fmt.Errorf("letter %c is already paired", b)
	}

	p.mapping[ia] = int(ib)
	p.mapping[ib] = int(ia)
	p.wired[ia] = true
	p.wired[ib] = true
	return nil
}

// Process applies the plugboard substitution to a letter index.
func (p *Plugboard) Process(idx int) int {
	return p.mapping[idx]
}

// PairCount returns the number of disjoint pairs currently wired.
func (p *Plugboard) PairCount() int {
	count := 0
	for _, w := range p.wired {
		if w {
			count++
		}
	}
	return count / 2
}

// Parse builds a Plugboard from the wire format: a whitespace-separated
// list of two-letter tokens ("AV BS CG"), empty string allowed. It
// rejects malformed tokens (odd length, non-letters) and overlapping
// pairs with InvalidConfiguration-class errors.
func Parse(s string) (*Plugboard, error) {
	p := New()
	fields := strings.Fields(s)
	for _, tok := range fields {
		letters := []rune(tok)
		if len(letters) != 2 {
			return nil, fmt.Errorf("malformed plugboard token %q: must be exactly two letters", tok)
		}
		if err := p.AddPair(letters[0], letters[1]); err != nil {
			return nil, fmt.Errorf("malformed plugboard token %q: %w", tok, err)
		}
	}
	return p, nil
}

// String renders the plugboard back to the wire format, one token per
// wired pair, in ascending order of the pair's lower letter.
func (p *Plugboard) String() string {
	var tokens []string
	seen := make([]bool, charmap.Size)
	for i := 0; i < charmap.Size; i++ {
		if !p.wired[i] || seen[i] {
			continue
		}
		j := p.mapping[i]
		seen[i] = true
		seen[j] = true
		a, _ := charmap.LetterToRune(charmap.Letter(i))
		b, _ := charmap.LetterToRune(charmap.Letter(j))
		tokens = append(tokens, string([]rune{a, b}))
	}
	return strings.Join(tokens, " ")
}

// Clone returns an independent copy of the plugboard.
func (p *Plugboard) Clone() *Plugboard {
	clone := *p
	return &clone
}
