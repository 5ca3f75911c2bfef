package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/failtrace/internal/presentation/tui"
	"github.com/aretw0/failtrace/pkg/severity"
	"github.com/spf13/cobra"
)

var severityCmd = &cobra.Command{
	Use:   "severity <impact> <scope>",
	Short: "Classify an incident as SEV-1 to SEV-5",
	Long: `Impact: 1 Cosmetic, 2 Minor, 3 Major, 4 Data Loss.
Scope:  1 Single, 2 Team, 3 Region, 4 Global.
Both accept the number or the name. --matrix prints the whole table.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if matrix, _ := cmd.Flags().GetBool("matrix"); matrix {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if matrix, _ := cmd.Flags().GetBool("matrix"); matrix {
			printMatrix()
			return
		}

		impact, err := severity.ParseImpact(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		scope, err := severity.ParseScope(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		level, err := severity.Classify(impact, scope)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s %s (%s impact, %s scope)\n", tui.SeverityBadge(level), level.Title, impact, scope)
		fmt.Println(level.Description)
		fmt.Printf("Response SLA: %s\nChannel:      %s\n", level.SLA, level.Channel)
	},
}

func printMatrix() {
	byCode := map[string]severity.Level{}
	for _, l := range severity.Levels() {
		byCode[l.Code] = l
	}

	fmt.Printf("%-10s", "")
	for s := severity.ScopeSingle; s <= severity.ScopeGlobal; s++ {
		fmt.Printf(" %-7s", s)
	}
	fmt.Println()

	for i, row := range severity.Matrix() {
		fmt.Printf("%-10s", severity.Impact(i+1))
		for _, code := range row {
			// Pad before coloring so escape codes do not break alignment.
			pad := strings.Repeat(" ", 7-len(code))
			fmt.Printf(" %s%s", tui.SeverityBadge(byCode[code]), pad)
		}
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(severityCmd)

	severityCmd.Flags().Bool("matrix", false, "Print the impact × scope table")
}
