package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/gearbox/internal/cli"

	// Import trigger packages to ensure their init() functions register them
	_ "github.com/arthur-debert/gearbox/pkg/triggers"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
