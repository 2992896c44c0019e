// Package main provides the Enigma cryptanalysis workbench's
// command-line interface.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/go-enigma/cracker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
