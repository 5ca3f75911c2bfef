package main

import (
	"fmt"
	"os"

	"github.com/aretw0/failtrace/internal/cli"
	"github.com/aretw0/failtrace/internal/compiler"
	"github.com/aretw0/failtrace/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the graph for consistency",
	Long: `Crawls the graph from the root and reports dead links and malformed nodes.
Nodes no path reaches are listed as warnings.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		defer closeApp(app)

		// The engine already compiled the graph; the crawl names the node holding each broken edge.
		if err := validator.ValidateGraph(app.Engine.Loader(), compiler.NewParser(), app.Engine.Root()); err != nil {
			closeApp(app)
			cli.Exit("validating graph", err)
		}

		for _, id := range app.Engine.Unreachable() {
			fmt.Fprintf(os.Stderr, "Warning: node '%s' is unreachable from '%s'\n", id, app.Engine.Root())
		}
		fmt.Printf("Graph is valid! ✅ (%d nodes)\n", app.Engine.Graph().Len())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
