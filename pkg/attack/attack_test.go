// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package attack

import (
	"os"
	"testing"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/pkg/configstream"
	"github.com/go-enigma/cracker/pkg/machine"
)

func tinyModel() cfgio.Model {
	return cfgio.Model{
		Rotors:      []string{"I", "II"},
		RotorsCount: 2,
		Duplicates:  false,
		Reflectors:  []string{"B"},
		Plugboard:   2,
	}
}

func writeTempDict(t *testing.T, lines []string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "dict-*.txt")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	for _, l := range lines {
		if _, err := f.WriteString(l + "\n"); err != nil {
			t.Fatalf("WriteString: %v", err)
		}
	}
	return f.Name()
}

func TestRankByICFindsKnownGoodConfiguration(t *testing.T) {
	cfg := cfgio.Configuration{Rotors: "I II", Reflector: "B", Ring: []int{0, 0}, Plugboard: "", Key: "AA"}
	enc, err := machine.New(cfg)
	if err != nil {
		t.Fatalf("machine.New: %v", err)
	}
	plaintext := "THEENEMYWILLATTACKATDAWNTHEENEMYWILLATTACKATDAWNTHE"
	cipher, err := enc.ProcessContinue(plaintext)
	if err != nil {
		t.Fatalf("ProcessContinue: %v", err)
	}

	s, err := configstream.NewBrute(cipher, tinyModel())
	if err != nil {
		t.Fatalf("NewBrute: %v", err)
	}
	results, err := RankByIC(s, 3)
	if err != nil {
		t.Fatalf("RankByIC: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score < results[i-1].Score {
			t.Errorf("results not ascending by score at index %d: %v", i, results)
		}
	}
	found := false
	for _, r := range results {
		if r.Text == plaintext {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the true plaintext among the top-3 IC-ranked candidates, got %+v", results)
	}
}

func TestRankByICRejectsNonPositiveTopK(t *testing.T) {
	s, err := configstream.NewBrute("HELLO", tinyModel())
	if err != nil {
		t.Fatalf("NewBrute: %v", err)
	}
	results, err := RankByIC(s, 0)
	if err != nil {
		t.Fatalf("RankByIC: %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestPlugboardICEmitsOneConfigurationPerLine(t *testing.T) {
	path := writeTempDict(t, []string{
		`{"Rotors":"I II","Reflector":"B","Ring":[0,0],"Plugboard":"","Key":"AA"}`,
		`{"Rotors":"I II","Reflector":"B","Ring":[0,0],"Plugboard":"","Key":"AB"}`,
	})
	s, err := configstream.NewDictPlug("HELLOHELLOHELLO", path)
	if err != nil {
		t.Fatalf("NewDictPlug: %v", err)
	}
	results, err := PlugboardIC(s, tinyModel(), 2)
	if err != nil {
		t.Fatalf("PlugboardIC: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, cfg := range results {
		fields := len(cfg.Plugboard)
		// model.Plugboard=2 pairs joined by one space: "XY ZW" = 5 chars.
		if fields != 5 {
			t.Errorf("plugboard field %q, want two space-joined pairs", cfg.Plugboard)
		}
	}
}

func TestKnownPlaintextExactFindsConfiguration(t *testing.T) {
	cfg := cfgio.Configuration{Rotors: "I II", Reflector: "B", Ring: []int{0, 0}, Plugboard: "", Key: "AA"}
	enc, err := machine.New(cfg)
	if err != nil {
		t.Fatalf("machine.New: %v", err)
	}
	plaintext := "ATTACKATDAWN"
	cipher, err := enc.ProcessContinue(plaintext)
	if err != nil {
		t.Fatalf("ProcessContinue: %v", err)
	}
	s, err := configstream.NewBrute(cipher, tinyModel())
	if err != nil {
		t.Fatalf("NewBrute: %v", err)
	}
	results, err := KnownPlaintextExact(s, plaintext)
	if err != nil {
		t.Fatalf("KnownPlaintextExact: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one matching configuration")
	}
	found := false
	for _, c := range results {
		if c.Rotors == "I II" && c.Reflector == "B" && c.Key == "AA" {
			found = true
		}
	}
	if !found {
		t.Error("planted configuration not among results")
	}
}

func TestKnownPlaintextInputPlugboardSoundness(t *testing.T) {
	cfg := cfgio.Configuration{Rotors: "I II", Reflector: "B", Ring: []int{0, 0}, Plugboard: "AB CD", Key: "AA"}
	enc, err := machine.New(cfg)
	if err != nil {
		t.Fatalf("machine.New: %v", err)
	}
	plaintext := "ATTACKATDAWNNOW"
	cipher, err := enc.ProcessContinue(plaintext)
	if err != nil {
		t.Fatalf("ProcessContinue: %v", err)
	}

	// The brute stream builds candidates with no plugboard; any emitted
	// configuration must, once its inferred plugboard is plugged back
	// in, decrypt the ciphertext to plaintext exactly (the "plugboard
	// inference soundness" property).
	s, err := configstream.NewBrute(cipher, tinyModel())
	if err != nil {
		t.Fatalf("NewBrute: %v", err)
	}
	results, err := KnownPlaintextInputPlugboard(s, plaintext, tinyModel())
	if err != nil {
		t.Fatalf("KnownPlaintextInputPlugboard: %v", err)
	}
	for _, c := range results {
		m, err := machine.New(c)
		if err != nil {
			t.Fatalf("machine.New(result): %v", err)
		}
		got, err := m.Process(cipher, c.Key)
		if err != nil {
			t.Fatalf("Process(result): %v", err)
		}
		if got != plaintext {
			t.Errorf("emitted configuration decrypts to %q, want %q", got, plaintext)
		}
	}
}

func TestParseRepeatedTextColonForm(t *testing.T) {
	fragments, gaps, err := ParseRepeatedText("MOV:RGA")
	if err != nil {
		t.Fatalf("ParseRepeatedText: %v", err)
	}
	if len(fragments) != 2 || fragments[0] != "MOV" || fragments[1] != "RGA" {
		t.Errorf("fragments = %v, want [MOV RGA]", fragments)
	}
	if len(gaps) != 2 || gaps[0] != 0 || gaps[1] != 0 {
		t.Errorf("gaps = %v, want [0 0]", gaps)
	}
}

func TestParseRepeatedTextDotForm(t *testing.T) {
	fragments, gaps, err := ParseRepeatedText("NOBCB.....MHJBD")
	if err != nil {
		t.Fatalf("ParseRepeatedText: %v", err)
	}
	if len(fragments) != 2 || fragments[0] != "NOBCB" || fragments[1] != "MHJBD" {
		t.Errorf("fragments = %v, want [NOBCB MHJBD]", fragments)
	}
	if len(gaps) != 2 || gaps[0] != 5 || gaps[1] != 0 {
		t.Errorf("gaps = %v, want [5 0]", gaps)
	}
}

func TestParseRepeatedTextRejectsInvalidForm(t *testing.T) {
	if _, _, err := ParseRepeatedText("NOSEPARATOR"); err == nil {
		t.Error("expected an error for text with neither ':' nor '.'")
	}
}

func TestRepetitionFindsPlantedConfiguration(t *testing.T) {
	cfg := cfgio.Configuration{Rotors: "I II", Reflector: "B", Ring: []int{0, 0}, Plugboard: "", Key: "AA"}
	enc, err := machine.New(cfg)
	if err != nil {
		t.Fatalf("machine.New: %v", err)
	}
	cipher, err := enc.ProcessContinue("MOVMOV")
	if err != nil {
		t.Fatalf("ProcessContinue: %v", err)
	}
	fragments, gaps, err := ParseRepeatedText(cipher[:3] + ":" + cipher[3:])
	if err != nil {
		t.Fatalf("ParseRepeatedText: %v", err)
	}

	s, err := configstream.NewBrute(fragments[0], tinyModel())
	if err != nil {
		t.Fatalf("NewBrute: %v", err)
	}
	results, err := Repetition(s, fragments, gaps)
	if err != nil {
		t.Fatalf("Repetition: %v", err)
	}
	found := false
	for _, c := range results {
		if c.Rotors == "I II" && c.Reflector == "B" && c.Key == "AA" {
			found = true
		}
	}
	if !found {
		t.Error("expected the planted configuration among repetition-attack results")
	}
}
