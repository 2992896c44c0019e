// Package cli provides the command-line interface for the Enigma
// cryptanalysis workbench.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "cracker",
	Short: "An Enigma machine simulator and cryptanalysis workbench",
	Long: `cracker simulates the historical Enigma machine family (M3/M4, rotors
I-VIII plus the thin M4 rotors Beta/Gamma) and implements the classic
cryptanalytic attacks against it: index-of-coincidence rotor and
plugboard recovery, known-plaintext attacks, the repetition attack, and
ring-setting recovery from an observed error count.

Examples:
  cracker process -c '{"Rotors":"I II III","Reflector":"B","Ring":[0,0,0],"Plugboard":"","Key":"AAA"}' -t "HELLOWORLD"
  cracker attack -t "FZFZVEQXCN" -m I -b --rotor 3 -o results.txt
  cracker recover-ring -c '{"Rotors":"I II III","Reflector":"B","Ring":[0,0,0],"Plugboard":"","Key":"AAA"}' -r 12
  cracker notches`,
	Version: version,
}

// Execute runs the root command and handles errors.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(attackCmd)
	rootCmd.AddCommand(recoverRingCmd)
	rootCmd.AddCommand(notchesCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// setupVerbose configures verbose logging if enabled.
func setupVerbose(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintln(cmd.ErrOrStderr(), "Verbose mode enabled")
	}
}
