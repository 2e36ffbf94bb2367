package main

import (
	"os"

	"github.com/carson-networks/budget-analysis/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
