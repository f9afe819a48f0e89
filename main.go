package main

import (
	"os"

	"github.com/leefowlercu/noots/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
