// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package ringrecovery

import (
	"testing"

	"github.com/go-enigma/cracker/internal/cfgio"
)

func TestRecoverBelowThreshold(t *testing.T) {
	cfg := cfgio.Configuration{Rotors: "I II III", Reflector: "B", Ring: []int{0, 0, 0}, Plugboard: "", Key: "AAA"}
	got, err := Recover(cfg, 12)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if got.Ring[2] != 14 {
		t.Errorf("Ring[2] = %d, want 14", got.Ring[2])
	}
	if got.Key != "AAO" {
		t.Errorf("Key = %q, want AAO", got.Key)
	}
	if got.Ring[0] != 0 || got.Ring[1] != 0 {
		t.Errorf("Ring = %v, want only position 2 touched", got.Ring)
	}
}

func TestRecoverAboveThresholdMovesLeft(t *testing.T) {
	cfg := cfgio.Configuration{Rotors: "I II III", Reflector: "B", Ring: []int{0, 0, 0}, Plugboard: "", Key: "AAA"}
	// 700 / 26 = 26 (still >= 26), / 26 again = 1 (< 26, stop). Two
	// divisions move the target two positions left of rightmost: index 0.
	got, err := Recover(cfg, 700)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if got.Ring[0] != 1 {
		t.Errorf("Ring[0] = %d, want 1", got.Ring[0])
	}
	if got.Ring[1] != 0 || got.Ring[2] != 0 {
		t.Errorf("Ring = %v, want only position 0 touched", got.Ring)
	}
}

func TestRecoverRejectsLengthMismatch(t *testing.T) {
	cfg := cfgio.Configuration{Rotors: "I II", Reflector: "B", Ring: []int{0, 0}, Plugboard: "", Key: "A"}
	if _, err := Recover(cfg, 5); err == nil {
		t.Error("expected an error for mismatched ring/key length")
	}
}

func TestRecoverDoesNotMutateInput(t *testing.T) {
	cfg := cfgio.Configuration{Rotors: "I II III", Reflector: "B", Ring: []int{0, 0, 0}, Plugboard: "", Key: "AAA"}
	if _, err := Recover(cfg, 12); err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if cfg.Ring[2] != 0 {
		t.Error("Recover mutated the caller's Ring slice")
	}
}
