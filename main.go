package main

import (
	"os"

	"github.com/anvilbuild/anvil/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
