// Command bootmem drives an early allocator over a simulated or real memory region, printing the
// result of every operation and the allocator's final state.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
