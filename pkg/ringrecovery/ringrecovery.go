// Package ringrecovery recovers a single rotor's ring setting from the
// count of leading wrong characters observed when a configuration is
// otherwise correct.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package ringrecovery

import (
	"fmt"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/internal/keyarith"
)

// Recover adjusts cfg's ring setting and matching key letter at one
// rotor position, inferred from wrongCount leading wrong characters.
//
// If wrongCount < 26, the rightmost rotor's ring is off by 26-wrongCount.
// Otherwise the position is found by repeatedly dividing wrongCount by
// 26 (moving one rotor further left each time) until the quotient drops
// below 26 — that quotient is the new ring value. This follows the
// literal "stop when the quotient < 26" rule rather than the source's
// "> 26" loop bound, which has a latent off-by-one at exactly 26.
func Recover(cfg cfgio.Configuration, wrongCount int) (cfgio.Configuration, error) {
	if len(cfg.Ring) == 0 || len(cfg.Key) != len(cfg.Ring) {
		return cfgio.Configuration{}, fmt.Errorf("configuration ring/key length mismatch")
	}

	newRing := wrongCount
	i := -1
	if wrongCount < 26 {
		newRing = 26 - wrongCount
	} else {
		for newRing >= 26 {
			newRing /= 26
			i--
		}
	}

	pos := len(cfg.Ring) + i
	if pos < 0 || pos >= len(cfg.Ring) {
		return cfgio.Configuration{}, fmt.Errorf("recovered ring position is out of range for %d rotors", len(cfg.Ring))
	}

	result := cfg
	result.Ring = append([]int(nil), cfg.Ring...)
	result.Ring[pos] = newRing

	letter := string(cfg.Key[pos])
	for n := 0; n < newRing; n++ {
		letter = keyarith.IncreaseKey(letter, nil)
	}
	keyRunes := []rune(cfg.Key)
	keyRunes[pos] = []rune(letter)[0]
	result.Key = string(keyRunes)

	return result, nil
}
