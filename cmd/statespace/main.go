// Command statespace solves the islands, maze and water-pitcher problems
// described by YAML fixtures, using one breadth-first search engine.
//
// Usage:
//
//	statespace run [--file problems.yaml] [--only name] [--parallel n] [--draw]
//	statespace list [--file problems.yaml]
//	statespace pitchers --capacity 3,4 --target 2
//
// Without --file the embedded reference scenarios are used.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
