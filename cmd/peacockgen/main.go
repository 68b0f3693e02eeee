package main

import (
	"os"

	"github.com/aledsdavies/peacockgen/cmd/peacockgen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
