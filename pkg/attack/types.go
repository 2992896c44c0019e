// Package attack implements the four cryptanalysis strategies: index of
// coincidence ranking over rotor settings, index of coincidence ranking
// over plugboard pairs, known-plaintext matching, and the repeated-
// plaintext attack.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package attack

import "github.com/go-enigma/cracker/internal/cfgio"

// Candidate is one surviving (or ranked) configuration produced by an
// attack, paired with the decrypted text that produced it and, for
// IC-ranked attacks, its score.
type Candidate struct {
	Text          string
	Configuration cfgio.Configuration
	Score         float64
}
