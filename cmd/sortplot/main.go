package main

import (
	"fmt"
	"os"

	"github.com/thiagonache/benchplot"
)

func main() {
	if err := benchplot.RunSortCLI(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
