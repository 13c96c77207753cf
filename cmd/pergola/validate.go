package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pergola/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Check the manifest for problems",
	Long: `Parses the manifest and reports structural errors (empty names, malformed
actions) as well as suspicious declarations such as shadowed trigger patterns.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "pergola.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if err := cli.RunValidate(path, os.Stdout); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
