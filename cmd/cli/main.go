package main

import (
	"fmt"
	"os"

	"github.com/benefique/cfo-times/pkg/runtime/terminal"
	"github.com/benefique/cfo-times/pkg/services/generator"
	"github.com/benefique/cfo-times/pkg/store/snapshot"
)

func main() {
	gen, err := generator.New(snapshot.DefaultRegistry())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Generator: gen,
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
