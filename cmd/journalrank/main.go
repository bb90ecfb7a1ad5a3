// SPDX-License-Identifier: MIT

// Package main provides the entry point for the journalrank CLI.
package main

import (
	"os"

	"github.com/katalvlaran/journalrank/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
