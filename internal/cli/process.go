// Package cli provides the process command for the Enigma workbench.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/pkg/machine"
	"github.com/go-enigma/cracker/pkg/scoring"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Encrypt or decrypt a text under a fixed configuration",
	Long: `Process runs a single text through an Enigma machine built from an
explicit configuration. Since the machine is an involution, the same
command decrypts ciphertext as readily as it encrypts plaintext.

Example:
  cracker process -c '{"Rotors":"II IV V","Reflector":"B","Ring":[0,0,0],"Plugboard":"AV BS CG DL FU HZ","Key":"WXC"}' -t "HELLOWORLD"`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringP("configuration", "c", "", "Enigma configuration (JSON)")
	processCmd.Flags().StringP("text", "t", "", "Text to encrypt or decrypt")
}

func runProcess(cmd *cobra.Command, args []string) error {
	setupVerbose(cmd)

	configuration, _ := cmd.Flags().GetString("configuration")
	text, _ := cmd.Flags().GetString("text")

	if configuration == "" {
		return &cfgio.MissingParameterError{Message: "Missing configuration, please use --help"}
	}
	if text == "" {
		return &cfgio.MissingParameterError{Message: "Missing text to process, please use --help"}
	}

	cfg, err := cfgio.DecodeConfiguration(configuration)
	if err != nil {
		return err
	}
	printConfiguration(cmd, cfg)

	m, err := machine.New(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Processing text using specified configuration...")
	result, err := m.Process(text, cfg.Key)
	if err != nil {
		return err
	}

	ic := scoring.IC(result)
	fmt.Fprintf(cmd.OutOrStdout(), "Result (IC : %v):\n\n", ic)
	fmt.Fprintln(cmd.OutOrStdout(), result)

	return nil
}
