package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/failtrace/internal/cli"
	"github.com/aretw0/failtrace/internal/presentation/tui"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/spf13/cobra"
)

var advanceCmd = &cobra.Command{
	Use:   "advance <answer>",
	Short: "Answer the current question of a stored session",
	Long: `Non-interactive step for scripts. The answer is an option number, a label or a
target node id. An invalid answer leaves the session untouched and exits with status 2.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, _ := cmd.Flags().GetString("session")

		app := openApp(cmd)
		defer closeApp(app)

		s, err := app.Answer(cmd.Context(), sessionID, args[0])
		if errors.Is(err, domain.ErrInvalidTransition) {
			fmt.Fprintf(os.Stderr, "Rejected: %v\n", err)
			closeApp(app)
			os.Exit(2)
		}
		if err != nil {
			closeApp(app)
			cli.Exit("advancing session", err)
		}

		fmt.Print(tui.NodeMarkdown(app.Engine.CurrentNode(s), app.Engine.History(s)))
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Send a stored session back to the root",
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, _ := cmd.Flags().GetString("session")

		app := openApp(cmd)
		defer closeApp(app)

		s, err := app.Sessions.Reset(cmd.Context(), sessionID)
		if err != nil {
			closeApp(app)
			cli.Exit("resetting session", err)
		}
		fmt.Printf("Session '%s' is back at '%s'.\n", s.ID, s.Current())
	},
}

func init() {
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(resetCmd)

	for _, c := range []*cobra.Command{advanceCmd, resetCmd} {
		c.Flags().StringP("session", "s", cli.DefaultSessionID, "Session id")
	}
}
