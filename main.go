package main

import (
	"github.com/BobLiterman/SISRS/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
