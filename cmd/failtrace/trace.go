package main

import (
	"os"

	"github.com/aretw0/failtrace/internal/cli"
	"github.com/aretw0/failtrace/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Walk the diagnostic graph interactively",
	Long: `Shows the current question and its numbered options. Answer with a number,
an option label or a node id. Type 'r' to start over and 'q' to quit.
Every step is saved, so running trace again resumes the session.`,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, _ := cmd.Flags().GetString("session")
		fresh, _ := cmd.Flags().GetBool("fresh")

		app := openApp(cmd)
		defer closeApp(app)

		if cli.IsInteractive() {
			tui.PrintBanner(os.Stdout)
		}

		err := app.Trace(cmd.Context(), cli.TraceOptions{
			SessionID: sessionID,
			Fresh:     fresh,
		})
		if err != nil {
			closeApp(app)
			cli.Exit("running trace", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringP("session", "s", cli.DefaultSessionID, "Session id to resume or create")
	traceCmd.Flags().Bool("fresh", false, "Discard the stored session and start at the root")

	// 'trace' is the default when no command is given.
	rootCmd.Run = traceCmd.Run
	rootCmd.Flags().AddFlagSet(traceCmd.Flags())
}
