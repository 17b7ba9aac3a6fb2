package main

import (
	"os"

	"github.com/baaaaaaaka/tmux-status/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
