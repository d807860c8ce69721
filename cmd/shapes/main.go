package main

import (
	"os"

	"shapes/cmd/shapes/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
