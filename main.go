// scribeci main entrypoint
//
// One binary, four roles: per-platform build jobs, the release assembler,
// the install-time platform gate, and the postinstall model fetch. Which
// role runs is a subcommand; everything heavy stays internal.

package main

import (
	"github.com/joho/godotenv"

	"scribeci/internal/cli"
)

func main() {
	// Local overrides for dev runs; harmless in CI.
	_ = godotenv.Load("environments/local.env")

	cli.Execute()
}
