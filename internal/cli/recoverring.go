// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/pkg/ringrecovery"
)

var recoverRingCmd = &cobra.Command{
	Use:   "recover-ring",
	Short: "Recover a ring setting from an observed wrong-character count",
	Long: `Given an otherwise-correct configuration and the number of leading
characters that decrypted wrong, recover-ring infers which ring setting
was off and by how much, and prints the corrected configuration.

Example:
  cracker recover-ring -c '{"Rotors":"I II III","Reflector":"B","Ring":[0,0,0],"Plugboard":"","Key":"AAA"}' -r 12`,
	RunE: runRecoverRing,
}

func init() {
	recoverRingCmd.Flags().StringP("configuration", "c", "", "Enigma configuration (JSON)")
	recoverRingCmd.Flags().IntP("recover-ring", "r", 0, "Number of leading wrong characters")
}

func runRecoverRing(cmd *cobra.Command, args []string) error {
	setupVerbose(cmd)

	configuration, _ := cmd.Flags().GetString("configuration")
	errs, _ := cmd.Flags().GetInt("recover-ring")

	if configuration == "" {
		return &cfgio.MissingParameterError{Message: "Missing configuration, please use --help"}
	}

	cfg, err := cfgio.DecodeConfiguration(configuration)
	if err != nil {
		return err
	}

	result, err := ringrecovery.Recover(cfg, errs)
	if err != nil {
		return err
	}

	enc, err := cfgio.EncodeConfiguration(result)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Result : ")
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), enc)

	return nil
}
