package main

import (
	"os"

	"github.com/f3rmion/curvebench/cmd/curvebench/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
