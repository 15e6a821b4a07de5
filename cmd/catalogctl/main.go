package main

import (
	"os"

	"github.com/jhoicas/configurador-api/cmd/catalogctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
