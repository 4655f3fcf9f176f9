package main

import (
	"os"

	"github.com/guilhermegouw/oklch16/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
