// Command holomap renders how complex mappings distort a sampled domain.
//
// Usage:
//
//	holomap [flags] mapping [mapping...]
//
// Each positional mapping is a name understood by package mapping (for
// example "z^2", "exp", "joukowski"); they are applied in order. The initial
// mesh and the transformed mesh are drawn side by side into a PNG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "holomap:", err)
		os.Exit(exitCode(err))
	}
}
