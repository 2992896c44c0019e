// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package attack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/pkg/configstream"
	"github.com/go-enigma/cracker/pkg/machine"
)

// Mode selects one of the three known-plaintext matching strategies.
type Mode int

const (
	Exact Mode = iota
	InputPlugboard
	CyclePlugboard
)

// KnownPlaintextExact emits every candidate configuration whose decrypt
// equals plaintext verbatim.
func KnownPlaintextExact(s *configstream.Stream, plaintext string) ([]cfgio.Configuration, error) {
	var results []cfgio.Configuration
	for {
		text, cfg, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if text == plaintext {
			results = append(results, cfg)
		}
	}
	return results, nil
}

// KnownPlaintextInputPlugboard infers a plugboard from the mismatches
// between each candidate decrypt and plaintext, and accepts the
// configuration only if reprocessing the stream's ciphertext under the
// inferred plugboard reproduces plaintext exactly.
//
// A mismatched pair (decrypted letter, plaintext letter) at position n
// is a candidate plug. It is rejected if either letter is already
// claimed by an accepted plug (the Go equivalent of the source's regex
// scan over the accepted-pairs list: both members of a plugboard pair
// are mutually exclusive with any other pair once accepted). A matching
// position (decrypt == plaintext) is likewise rejected if that single
// letter is already claimed — a plug can't both leave a letter alone
// and swap it.
func KnownPlaintextInputPlugboard(s *configstream.Stream, plaintext string, model cfgio.Model) ([]cfgio.Configuration, error) {
	ciphertext := s.Text()
	var results []cfgio.Configuration

	for {
		text, cfg, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		used := make(map[byte]bool)
		var plugs []string
		valid := true
		for n := 0; n < len(text) && n < len(plaintext); n++ {
			u, p := text[n], plaintext[n]
			if u != p {
				pair := string([]byte{u, p})
				reverse := string([]byte{p, u})
				if !contains(plugs, pair) && !contains(plugs, reverse) {
					if used[u] || used[p] {
						valid = false
						break
					}
					plugs = append(plugs, pair)
					used[u] = true
					used[p] = true
				}
			} else if used[p] {
				valid = false
				break
			}
		}
		if !valid || len(plugs) > model.Plugboard {
			continue
		}

		candidate := cfg
		candidate.Plugboard = strings.Join(plugs, " ")
		m, err := machine.New(candidate)
		if err != nil {
			continue
		}
		reprocessed, err := m.Process(ciphertext, candidate.Key)
		if err != nil {
			continue
		}
		if reprocessed == plaintext {
			results = append(results, candidate)
		}
	}
	return results, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Anchor is one point in a known plugboard cycle: a side tag ('P' or
// 'E') and a zero-based index into that side's text.
type Anchor struct {
	Side  byte
	Index int
}

// ParseCycleAnchors parses a space-separated chain like "P3 E12 P7"
// into Anchors.
func ParseCycleAnchors(s string) ([]Anchor, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return nil, fmt.Errorf("cycle_plugboard chain needs at least two anchors, got %d", len(fields))
	}
	anchors := make([]Anchor, len(fields))
	for i, f := range fields {
		if len(f) < 2 || (f[0] != 'P' && f[0] != 'E') {
			return nil, fmt.Errorf("invalid anchor %q: must start with P or E", f)
		}
		idx, err := strconv.Atoi(f[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid anchor %q: %w", f, err)
		}
		anchors[i] = Anchor{Side: f[0], Index: idx}
	}
	return anchors, nil
}

// KnownPlaintextCyclePlugboard emits every candidate configuration
// consistent with a known plugboard cycle: for every consecutive pair
// of anchors (wrapping), the cycle asserts that the plugboard letter at
// one anchor equals the plugboard letter at the next.
//
// Character selection deliberately mirrors the source's asymmetry
// rather than "fixing" it: for an anchor with side 'P', its own
// character is drawn from ciphertext, but when a 'P' anchor is the
// *next* anchor in a pair its character is drawn from the decrypt; the
// opposite holds for side 'E'. This reflects that each side names where
// a plug sits in the signal path, not which text its letter comes from.
func KnownPlaintextCyclePlugboard(s *configstream.Stream, anchors []Anchor) ([]cfgio.Configuration, error) {
	ciphertext := s.Text()
	var results []cfgio.Configuration

	for {
		text, cfg, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		valid := true
		for n, a := range anchors {
			next := anchors[(n+1)%len(anchors)]

			var current, nextChar byte
			switch a.Side {
			case 'P':
				current = ciphertext[a.Index]
			case 'E':
				current = text[a.Index]
			}
			switch next.Side {
			case 'P':
				nextChar = text[next.Index]
			case 'E':
				nextChar = ciphertext[next.Index]
			}
			if current != nextChar {
				valid = false
				break
			}
		}
		if valid {
			results = append(results, cfg)
		}
	}
	return results, nil
}
