package main

import (
	"os"

	"nupmerge/cmd/nupmerge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
