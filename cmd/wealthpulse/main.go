package main

import (
	"os"

	"github.com/wealthpulse-dev/wealthpulse/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
