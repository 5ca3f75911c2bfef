package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/failtrace/internal/cli"
	"github.com/aretw0/failtrace/pkg/checklist"
	"github.com/spf13/cobra"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Track the agent readiness checklist",
	Long:  `The readiness gate for LLM-backed agents, persisted in the configured store.`,
}

var checklistLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show every item and the overall progress",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		defer closeApp(app)

		status, err := app.Checklist.Status(cmd.Context())
		if err != nil {
			closeApp(app)
			cli.Exit("loading checklist", err)
		}

		for _, category := range app.Checklist.Categories() {
			fmt.Printf("%s\n", category)
			for _, it := range app.Checklist.ItemsIn(category) {
				mark := " "
				if status.Checked[it.ID] {
					mark = "x"
				}
				fmt.Printf("  [%s] %-6s %s\n", mark, it.ID, it.Text)
			}
		}
		fmt.Printf("\nProgress: %d/%d (%d%%)\n", status.Completed, status.Total, status.Progress)
	},
}

var checklistToggleCmd = &cobra.Command{
	Use:   "toggle <item-id>...",
	Short: "Check or uncheck items",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		defer closeApp(app)

		for _, id := range args {
			checked, err := app.Checklist.Toggle(cmd.Context(), id)
			if errors.Is(err, checklist.ErrUnknownItem) {
				fmt.Printf("Error: unknown item '%s'\n", id)
				closeApp(app)
				os.Exit(1)
			}
			if err != nil {
				closeApp(app)
				cli.Exit("toggling item", err)
			}
			state := "unchecked"
			if checked {
				state = "checked"
			}
			fmt.Printf("%s %s\n", id, state)
		}
	},
}

var checklistResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Uncheck every item",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		defer closeApp(app)

		if err := app.Checklist.Reset(cmd.Context()); err != nil {
			closeApp(app)
			cli.Exit("resetting checklist", err)
		}
		fmt.Println("Checklist cleared.")
	},
}

func init() {
	rootCmd.AddCommand(checklistCmd)
	checklistCmd.AddCommand(checklistLsCmd)
	checklistCmd.AddCommand(checklistToggleCmd)
	checklistCmd.AddCommand(checklistResetCmd)
}
