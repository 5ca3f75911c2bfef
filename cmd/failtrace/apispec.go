package main

import (
	"fmt"
	"os"

	"github.com/aretw0/failtrace/pkg/apispec"
	"github.com/spf13/cobra"
)

var apispecCmd = &cobra.Command{
	Use:   "apispec",
	Short: "Print the OpenAPI document of the failure catalog API",
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		doc := apispec.Build()
		if err := doc.Validate(cmd.Context()); err != nil {
			fmt.Printf("Error: invalid document: %v\n", err)
			os.Exit(1)
		}

		out, err := apispec.Render(doc, format)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
	},
}

func init() {
	rootCmd.AddCommand(apispecCmd)

	apispecCmd.Flags().StringP("format", "f", "yaml", "Output format: json or yaml")
}
