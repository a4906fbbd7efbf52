package main

import (
	"os"

	"github.com/idilsaglam/dateboard/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
