package main

import (
	"os"

	"github.com/rotoclone/rotoclone-zone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
