// Package main provides the graphplot CLI tool.
//
// Usage:
//
//	graphplot [flags] <command> [flags]
//
// Commands:
//
//	path     - Find and draw the shortest path between two nodes
//	surface  - Sample z = cos(x)·sin(y) and draw it as a 3D surface
//
// Configuration:
//
//	Defaults reproduce the built-in sample; pass --config to load a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/graphplot/cmd/graphplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
