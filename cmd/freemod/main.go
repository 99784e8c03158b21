// SPDX-License-Identifier: MIT

// Command freemod evaluates free-module expressions from the command line.
//
//	freemod --ring ZZ --rank 3 add "(1, 2, 3)" "(4, 5, 6)"
//	freemod --ring HH --rank 1 lmul i "(j)"
//	freemod batch script.toml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
