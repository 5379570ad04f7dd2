// Package main is the entry point for the tripbook CLI.
package main

import (
	"os"

	"github.com/aidanlsb/tripbook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
