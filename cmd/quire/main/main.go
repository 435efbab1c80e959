package main

import (
	"fmt"
	"os"

	"github.com/mvieira/quire/cmd/quire"
	"github.com/mvieira/quire/pkg/ui/output/styles"
)

func main() {
	rootCmd := quire.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
