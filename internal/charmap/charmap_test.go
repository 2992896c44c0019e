// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package charmap

import "testing"

func TestRuneToLetterRoundTrip(t *testing.T) {
	for r := rune('A'); r <= 'Z'; r++ {
		l, err := RuneToLetter(r)
		if err != nil {
			t.Fatalf("RuneToLetter(%c) unexpected error: %v", r, err)
		}
		back, err := LetterToRune(l)
		if err != nil {
			t.Fatalf("LetterToRune(%d) unexpected error: %v", l, err)
		}
		if back != r {
			t.Errorf("round trip %c -> %d -> %c, want %c", r, l, back, r)
		}
	}
}

func TestRuneToLetterInvalid(t *testing.T) {
	for _, r := range []rune{'a', '0', ' ', '!'} {
		if _, err := RuneToLetter(r); err == nil {
			t.Errorf("RuneToLetter(%c) = nil error, want error", r)
		}
	}
}

func TestLetterToRuneOutOfBounds(t *testing.T) {
	if _, err := LetterToRune(-1); err == nil {
		t.Errorf("LetterToRune(-1) = nil error, want error")
	}
	if _, err := LetterToRune(26); err == nil {
		t.Errorf("LetterToRune(26) = nil error, want error")
	}
}

func TestStringToLettersAndBack(t *testing.T) {
	s := "HELLOWORLD"
	letters, err := StringToLetters(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(letters) != len(s) {
		t.Fatalf("len(letters) = %d, want %d", len(letters), len(s))
	}
	back, err := LettersToString(letters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != s {
		t.Errorf("LettersToString = %q, want %q", back, s)
	}
}

func TestStringToLettersInvalid(t *testing.T) {
	if _, err := StringToLetters("HELLO WORLD"); err == nil {
		t.Errorf("StringToLetters with space = nil error, want error")
	}
}

func TestMod(t *testing.T) {
	cases := map[int]int{0: 0, 25: 25, 26: 0, -1: 25, -26: 0, 52: 0}
	for in, want := range cases {
		if got := Mod(in); got != want {
			t.Errorf("Mod(%d) = %d, want %d", in, got, want)
		}
	}
}
