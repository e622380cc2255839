// Package main is the entry point for searchit.
package main

import (
	"os"

	"github.com/donaldgifford/searchit/cmd/searchit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
