package main

import (
	"os"

	"github.com/teehex/teehex/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
