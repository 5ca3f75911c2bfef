package main

import (
	"fmt"

	"github.com/aretw0/failtrace/internal/cli"
	"github.com/aretw0/failtrace/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the graph as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart of the diagnostic graph.
With --session the path of that session is highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, _ := cmd.Flags().GetString("session")

		app := openApp(cmd)
		defer closeApp(app)

		var overlay *graph.GraphOverlay
		if sessionID != "" {
			s, err := app.Sessions.Load(cmd.Context(), sessionID)
			if err != nil {
				closeApp(app)
				cli.Exit("loading session", err)
			}
			overlay = graph.OverlayFromPath(s.Path)
		}

		fmt.Print(graph.GenerateMermaid(app.Engine.Inspect(), app.Engine.Root(), overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("session", "s", "", "Highlight the path of this session")
}
