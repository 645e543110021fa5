// Command vitlc is the Vitte/Vitl compiler driver's CLI entry point.
//
// Grounded on btouchard/gmx's cmd/gmx/main.go, which dispatches a
// handful of subcommands to cmd/gmx/{build,run,...}.go: this driver
// has no subcommands (spec.md names one pipeline, not a command tree),
// so main only builds Options from argv and hands off to
// internal/driver.Run.
package main

import (
	"os"

	"github.com/vitte-lang/vitlc/internal/driver"
)

func main() {
	opts := driver.ParseArgs(os.Args[1:])
	os.Exit(driver.Run(os.Stdout, os.Stderr, opts))
}
