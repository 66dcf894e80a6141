// Command bitwig sends commands to Bitwig Studio through the DrivenByMoss OSC extension.
package main

import (
	"os"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
