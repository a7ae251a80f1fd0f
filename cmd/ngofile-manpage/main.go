package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/ngofile/cmd/ngofile"
)

func main() {
	rootCmd := ngofile.NewRootCmd()

	err := doc.GenMan(rootCmd, ngofile.ManHeader(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
