package main

// This is an interpreter for a dice notation expression language.

import (
	"fmt"
	"os"

	"github.com/letung3105/dicelang/godice/internal/cmd/godice"
)

func main() {
	cfg, err := godice.ParseConfig(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		godice.Usage(os.Stderr)
		os.Exit(64)
	}
	os.Exit(godice.Run(cfg, os.Stdin, os.Stdout, os.Stderr))
}
