package main

import (
	"os"

	"github.com/croissant-tools/croissant/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
