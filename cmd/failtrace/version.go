package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/failtrace"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of failtrace",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("failtrace version %s\n", strings.TrimSpace(failtrace.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
