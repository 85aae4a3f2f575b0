// Package main is the gatewire CLI entry point.
package main

import (
	"os"

	"github.com/gatewire-labs/gatewire/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
