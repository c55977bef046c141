// profileicons — Placeholder profile icon generator.
//
// Usage:
//
//	profileicons
//
// Writes profile_yuki.png, profile_ren.png, profile_keiji.png and
// ic_message.png into ./icon.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xob0t/profileicons/pkg/profiles"
)

func main() {
	if len(os.Args) > 1 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Stdout); err != nil {
		fatal(err)
	}
}

func run(out io.Writer) error {
	return profiles.Run(profiles.OutputDir, out)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `profileicons — Placeholder icon generator

USAGE:
    profileicons

Writes 200x200 PNG icons into ./icon. Takes no arguments.
`)
}
