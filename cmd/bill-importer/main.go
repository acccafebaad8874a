package main

import (
	"os"

	"github.com/lifeledger/bill-importer/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
