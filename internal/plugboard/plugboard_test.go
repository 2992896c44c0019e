// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package plugboard

import "testing"

func TestAddPairAndProcess(t *testing.T) {
	p := New()
	if err := p.AddPair('A', 'V'); err != nil {
		t.Fatalf("AddPair: %v", err)
	}
	if p.Process(int('A'-'A')) != int('V'-'A') {
		t.Errorf("Process(A) should map to V")
	}
	if p.Process(int('V'-'A')) != int('A'-'A') {
		t.Errorf("Process(V) should map to A")
	}
	if p.Process(int('B'-'A')) != int('B'-'A') {
		t.Errorf("unwired letter should pass through unchanged")
	}
}

func TestAddPairRejectsOverlap(t *testing.T) {
	p := New()
	if err := p.AddPair('A', 'V'); err != nil {
		t.Fatalf("AddPair: %v", err)
	}
	if err := p.AddPair('A', 'B'); err == nil {
		t.Errorf("AddPair with reused letter should fail")
	}
	if err := p.AddPair('C', 'V'); err == nil {
		t.Errorf("AddPair with reused letter should fail")
	}
}

func TestAddPairRejectsSelfPair(t *testing.T) {
	p := New()
	if err := p.AddPair('A', 'A'); err == nil {
		t.Errorf("AddPair(A, A) should fail")
	}
}

func TestParseEmpty(t *testing.T) {
	p, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") unexpected error: %v", err)
	}
	if p.PairCount() != 0 {
		t.Errorf("PairCount() = %d, want 0", p.PairCount())
	}
}

func TestParseValid(t *testing.T) {
	p, err := Parse("AV BS CG DL FU HZ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.PairCount() != 6 {
		t.Errorf("PairCount() = %d, want 6", p.PairCount())
	}
}

func TestParseRejectsOverlap(t *testing.T) {
	if _, err := Parse("AV VB"); err == nil {
		t.Errorf("Parse with overlapping pairs should fail")
	}
}

func TestParseRejectsMalformedToken(t *testing.T) {
	cases := []string{"A", "ABC", "A1", "a1"}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q) should fail", c)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	src := "AV BS CG DL FU HZ"
	p, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p2, err := Parse(p.String())
	if err != nil {
		t.Fatalf("Parse(String()): %v", err)
	}
	if p2.PairCount() != p.PairCount() {
		t.Errorf("round trip pair count mismatch: %d vs %d", p2.PairCount(), p.PairCount())
	}
	for i := 0; i < 26; i++ {
		if p.Process(i) != p2.Process(i) {
			t.Errorf("round trip mapping mismatch at %d", i)
		}
	}
}

func TestClone(t *testing.T) {
	p, _ := Parse("AV BS")
	clone := p.Clone()
	if err := clone.AddPair('C', 'D'); err != nil {
		t.Fatalf("AddPair on clone: %v", err)
	}
	if p.PairCount() == clone.PairCount() {
		t.Errorf("modifying clone affected original")
	}
}
