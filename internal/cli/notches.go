// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notchesCmd = &cobra.Command{
	Use:   "notches",
	Short: "Print the turnover notch position for each rotor",
	RunE:  runNotches,
}

func runNotches(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "+---------------+----------------------+")
	fmt.Fprintln(out, "|     Rotor     | Turnover Position(s) |")
	fmt.Fprintln(out, "+---------------+----------------------+")
	fmt.Fprintln(out, "| I             | Q -> R               |")
	fmt.Fprintln(out, "| II            | E -> F               |")
	fmt.Fprintln(out, "| III           | V -> W               |")
	fmt.Fprintln(out, "| IV            | J -> K               |")
	fmt.Fprintln(out, "| V             | Z -> A               |")
	fmt.Fprintln(out, "| VI, VII, VIII | Z -> A & M -> N      |")
	fmt.Fprintln(out, "+---------------+----------------------+")
	return nil
}
