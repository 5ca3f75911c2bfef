package main

import (
	"fmt"
	"os"

	"github.com/aretw0/failtrace/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "failtrace",
	Short: "failtrace walks an incident diagnostic graph",
	Long: `failtrace asks one question at a time and follows your answers through a
diagnostic graph until it reaches a solution or an escalation.
Without --dir it uses the built-in incident triage playbook.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Graph directory (graph.yaml or Markdown nodes); empty uses the built-in playbook")
	rootCmd.PersistentFlags().String("config", "", "Config file (default failtrace.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// openApp builds the application from the persistent flags or exits.
func openApp(cmd *cobra.Command) *cli.App {
	dir, _ := cmd.Flags().GetString("dir")
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")

	app, err := cli.NewApp(cmd.Context(), cli.Options{
		ConfigPath: configPath,
		Dir:        dir,
		LogLevel:   logLevel,
	})
	if err != nil {
		cli.Exit("initializing failtrace", err)
	}
	return app
}

// closeApp flushes metrics and releases the store, reporting failures on stderr.
func closeApp(app *cli.App) {
	if err := app.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}
