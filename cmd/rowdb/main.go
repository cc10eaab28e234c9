package main

import (
	"os"

	"github.com/leengari/rowdb/cmd/rowdb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
