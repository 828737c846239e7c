package main

import (
	"fmt"
	"os"

	"rsatoolkit/src/cmd"
)

func main() {
	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
