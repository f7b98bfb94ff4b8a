// Package main is the entry point for the recenseur service and CLI.
package main

import (
	"os"

	"github.com/Nathalie1962/recenseur-backend/cmd/recenseur/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
