package main

import (
	"os"

	"amsign/cmd/amsign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
