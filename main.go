package main

import (
	"os"

	"github.com/abhisek/quickcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
