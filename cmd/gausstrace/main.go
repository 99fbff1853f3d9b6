// SPDX-License-Identifier: MIT

// Command gausstrace solves a linear system and prints every elimination step.
//
//	gausstrace solve system.yaml
//	gausstrace solve --format json --strict < system.json
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
