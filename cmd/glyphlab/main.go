// Command glyphlab runs trigram corpus analyses and fractionation ciphers
// from the command line.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
