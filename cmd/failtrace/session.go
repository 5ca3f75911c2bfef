package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/failtrace/internal/cli"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage stored trace sessions",
	Long:  `List, inspect and remove the sessions kept in the configured store.`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all stored sessions",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		defer closeApp(app)

		ids, err := app.Sessions.List(cmd.Context())
		if err != nil {
			closeApp(app)
			cli.Exit("listing sessions", err)
		}

		if len(ids) == 0 {
			fmt.Println("No sessions found.")
			return
		}

		fmt.Println("Sessions:")
		for _, id := range ids {
			s, err := app.Sessions.Load(cmd.Context(), id)
			if err != nil {
				fmt.Printf("- %s (unreadable: %v)\n", id, err)
				continue
			}
			fmt.Printf("- %s at '%s' (%d steps, updated %s)\n",
				id, s.Current(), len(s.Path)-1, s.UpdatedAt.Format("2006-01-02 15:04"))
		}
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Print a session and its path as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd)
		defer closeApp(app)

		s, err := app.Sessions.Load(cmd.Context(), args[0])
		if err != nil {
			closeApp(app)
			cli.Exit(fmt.Sprintf("loading session '%s'", args[0]), err)
		}

		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			closeApp(app)
			cli.Exit("marshaling session", err)
		}
		fmt.Println(string(data))

		trail := make([]string, 0, len(s.Path))
		for _, n := range app.Engine.History(s) {
			trail = append(trail, n.Prompt)
		}
		fmt.Fprintln(os.Stderr, strings.Join(trail, " → "))
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <session-id>...",
	Short: "Remove one or more sessions",
	Run: func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")
		if !all && len(args) == 0 {
			fmt.Println("Error: name at least one session or pass --all")
			os.Exit(1)
		}

		app := openApp(cmd)
		defer closeApp(app)

		if all {
			ids, err := app.Sessions.List(cmd.Context())
			if err != nil {
				closeApp(app)
				cli.Exit("listing sessions", err)
			}
			args = ids
		}

		hasError := false
		for _, id := range args {
			if err := app.Sessions.Delete(cmd.Context(), id); err != nil {
				fmt.Printf("Error removing '%s': %v\n", id, err)
				hasError = true
			} else {
				fmt.Printf("Removed session '%s'\n", id)
			}
		}

		if hasError {
			closeApp(app)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)

	sessionRmCmd.Flags().Bool("all", false, "Remove every stored session")
}
