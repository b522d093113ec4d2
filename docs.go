package main

import (
	"fmt"

	"github.com/BobLiterman/SISRS/cmd"
	"github.com/spf13/cobra/doc"
)

// makeDocs writes Markdown documentation for the command tree to ./docs
func makeDocs() {
	if err := doc.GenMarkdownTree(cmd.RootCmd, "./docs"); err != nil {
		fmt.Println(err.Error())
	}
}
