// Package main is the entry point for the remind CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/remind/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
