package main

import (
	"os"

	"github.com/arthur-debert/langgen/cmd/langgen/commands"
)

func main() {
	os.Exit(commands.Run(os.Args[1:], os.Stdout, os.Stderr))
}
