// Package machine implements the Enigma simulator: a stateful,
// bijective character transformation parameterised by rotor identities,
// reflector, ring settings, plugboard, and display key.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package machine

import (
	"fmt"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/internal/charmap"
	"github.com/go-enigma/cracker/internal/plugboard"
	"github.com/go-enigma/cracker/internal/reflector"
	"github.com/go-enigma/cracker/internal/rotor"
)

// Machine is a configured Enigma: its rotor stack (leftmost first,
// matching the wire Configuration's Rotors order), reflector, and
// plugboard. It is not safe for concurrent use; each stream or attack
// owns exactly one Machine.
type Machine struct {
	rotors    []*rotor.Rotor
	reflector *reflector.Reflector
	plugboard *plugboard.Plugboard
}

// New builds a Machine from a wire Configuration, validating rotor
// identifiers, reflector identifier, plugboard pairs, and that
// Ring/Key lengths match the rotor count.
func New(cfg cfgio.Configuration) (*Machine, error) {
	tags, err := cfg.RotorTags()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(cfg.Ring) != len(tags) {
		return nil, fmt.Errorf("invalid configuration: ring length %d does not match rotor count %d", len(cfg.Ring), len(tags))
	}

	refTag, err := cfg.ReflectorTag()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	refl, err := reflector.New(refTag)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	pb, err := cfg.PlugboardPairs()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	rotors := make([]*rotor.Rotor, len(tags))
	for i, tag := range tags {
		r, err := rotor.New(tag, cfg.Ring[i], 0)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		rotors[i] = r
	}

	m := &Machine{rotors: rotors, reflector: refl, plugboard: pb}
	if cfg.Key != "" {
		if err := m.SetDisplay(cfg.Key); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return m, nil
}

// SetDisplay resets the rotor window to key, one letter per rotor,
// leftmost first. It does not touch ring settings.
func (m *Machine) SetDisplay(key string) error {
	letters := []rune(key)
	if len(letters) != len(m.rotors) {
		return fmt.Errorf("key length %d does not match rotor count %d", len(letters), len(m.rotors))
	}
	for i, l := range letters {
		idx, err := charmap.RuneToLetter(l)
		if err != nil {
			return fmt.Errorf("invalid key letter %q: %w", l, err)
		}
		m.rotors[i].SetPosition(int(idx))
	}
	return nil
}

// Display returns the current rotor window as a string, leftmost first.
func (m *Machine) Display() string {
	letters := make([]rune, len(m.rotors))
	for i, r := range m.rotors {
		l, _ := charmap.LetterToRune(charmap.Letter(r.Position()))
		letters[i] = l
	}
	return string(letters)
}

// Process sets the display to key and runs text through the machine,
// returning a string of identical length. Non-letters pass through
// unchanged; letters map through the full substitution chain.
func (m *Machine) Process(text, key string) (string, error) {
	if err := m.SetDisplay(key); err != nil {
		return "", err
	}
	return m.ProcessContinue(text)
}

// ProcessContinue runs text through the machine from its current
// display, without resetting it first. Used by the configuration
// streams, which set the display once per candidate before calling it.
func (m *Machine) ProcessContinue(text string) (string, error) {
	out := make([]rune, 0, len(text))
	for _, c := range text {
		idx, err := charmap.RuneToLetter(c)
		if err != nil {
			out = append(out, c)
			continue
		}
		out = append(out, m.processLetter(idx))
	}
	return string(out), nil
}

// processLetter steps the rotors, then carries the signal through the
// plugboard, the rotor stack right-to-left, the reflector, the rotor
// stack left-to-right, and the plugboard again.
func (m *Machine) processLetter(idx charmap.Letter) rune {
	m.stepRotors()

	signal := m.plugboard.Process(int(idx))
	for i := len(m.rotors) - 1; i >= 0; i-- {
		signal = m.rotors[i].Forward(signal)
	}
	signal = m.reflector.Reflect(signal)
	for i := 0; i < len(m.rotors); i++ {
		signal = m.rotors[i].Backward(signal)
	}
	signal = m.plugboard.Process(signal)

	out, _ := charmap.LetterToRune(charmap.Letter(signal))
	return out
}

// stepRotors advances the rotor stack by one key press, implementing
// the double-stepping anomaly: the rightmost rotor (fastest) always
// advances; its left neighbour advances when the rightmost rotor sits
// at its notch; the next rotor over advances only as part of a double
// step, when the middle rotor itself sits at its own notch (in which
// case both it and its left neighbour advance on this same press). A
// thin leftmost rotor (Beta/Gamma) never advances and never reports
// being at a notch, so it is never consulted or stepped here.
func (m *Machine) stepRotors() {
	n := len(m.rotors)
	fast := n - 1
	if fast < 0 {
		return
	}
	r1 := fast - 1
	r2 := fast - 2

	r1AtNotch := r1 >= 0 && m.rotors[r1].IsAtNotch()
	r0AtNotch := m.rotors[fast].IsAtNotch()

	if r1AtNotch {
		m.rotors[r1].Step()
		if r2 >= 0 {
			m.rotors[r2].Step()
		}
	} else if r0AtNotch && r1 >= 0 {
		m.rotors[r1].Step()
	}
	m.rotors[fast].Step()
}

// Reset restores the display to key without rebuilding rotor wiring or
// ring settings.
func (m *Machine) Reset(key string) error {
	return m.SetDisplay(key)
}

// Clone returns an independent copy of the machine, including its
// current rotor display positions.
func (m *Machine) Clone() *Machine {
	rotors := make([]*rotor.Rotor, len(m.rotors))
	for i, r := range m.rotors {
		rotors[i] = r.Clone()
	}
	return &Machine{
		rotors:    rotors,
		reflector: m.reflector.Clone(),
		plugboard: m.plugboard.Clone(),
	}
}

// RotorCount returns the number of rotors in the stack.
func (m *Machine) RotorCount() int { return len(m.rotors) }
