// Package main is the entry point for the motiontool CLI.
package main

import (
	"os"

	"github.com/younwookim/fightstick/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
