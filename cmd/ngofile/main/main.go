package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ngofile/cmd/ngofile"
	"github.com/arthur-debert/ngofile/pkg/style"
)

func main() {
	rootCmd := ngofile.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !ngofile.IsSilent(err) {
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
