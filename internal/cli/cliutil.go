package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/go-enigma/cracker/internal/cfgio"
)

// alphaUpper strips every non-letter rune and uppercases the rest,
// mirroring the boundary-layer preprocessing ciphertext gets before any
// attack except the repetition attack (which needs its separators).
func alphaUpper(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// printConfiguration writes a configuration's fields in the same order
// the workbench has always reported them.
func printConfiguration(cmd *cobra.Command, cfg cfgio.Configuration) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration :")
	fmt.Fprintln(out, "Rotors : "+cfg.Rotors)
	fmt.Fprintln(out, "Reflector : "+cfg.Reflector)
	rings := make([]string, len(cfg.Ring))
	for i, r := range cfg.Ring {
		rings[i] = fmt.Sprintf("%d", r)
	}
	fmt.Fprintln(out, "Ring : "+strings.Join(rings, " "))
	fmt.Fprintln(out, "Plugboard : "+cfg.Plugboard)
	fmt.Fprintln(out, "Key : "+cfg.Key)
}

// printModel writes a model's fields in the same order the workbench
// has always reported them.
func printModel(cmd *cobra.Command, m cfgio.Model) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Rotors : "+strings.Join(m.Rotors, " "))
	fmt.Fprintf(out, "Rotors count : %d\n", m.RotorsCount)
	fmt.Fprintf(out, "Duplicates : %v\n", m.Duplicates)
	fmt.Fprintln(out, "Reflectors : "+strings.Join(m.Reflectors, " "))
	fmt.Fprintf(out, "Number of plugs in plugboard : %d\n", m.Plugboard)
}

// writeConfigurations appends one JSON configuration per line to path.
func writeConfigurations(path string, cfgs []cfgio.Configuration) error {
	lines := make([]string, len(cfgs))
	for i, cfg := range cfgs {
		enc, err := cfgio.EncodeConfiguration(cfg)
		if err != nil {
			return err
		}
		lines[i] = enc
	}
	return cfgio.AppendLines(path, lines)
}
