// SPDX-License-Identifier: EPL-2.0

// Command murmur plays and manages ambient sound mixes from a terminal.
//
// Usage:
//
//	murmur [flags] <command> [args]
//
// Commands:
//
//	sounds   - list the sound library
//	play     - play sounds until interrupted, a duration or the sleep timer
//	mix      - save, list, play, favorite and delete mixes
//	export   - render a saved mix to a WAV file (premium)
//	prefs    - show, reset or unlock preferences
//	version  - print the version
//
// Configuration comes from MURMUR_* environment variables and an optional
// .env file; flags override both.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if cur != nil {
		if cerr := cur.close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
