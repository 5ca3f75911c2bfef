package main

import (
	"fmt"
	"os"

	"github.com/aretw0/failtrace/internal/cli"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write the built-in playbook to a directory for editing",
	Long: `Exports the incident triage playbook so it can be customized and loaded with --dir.
The markdown format writes one file per node; yaml writes a single graph.yaml.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "playbook"
		if len(args) > 0 {
			dir = args[0]
		}
		format, _ := cmd.Flags().GetString("format")

		if err := cli.Scaffold(cmd.Context(), dir, format); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Playbook written to %s. Try: failtrace validate --dir %s\n", dir, dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("format", "f", cli.FormatMarkdown, "Output format: markdown or yaml")
}
