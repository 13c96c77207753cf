package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pergola/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [manifest]",
	Short: "Export the menu visualization",
	Long:  `Builds the menu from the manifest and outputs a Mermaid diagram (graph TD) of its options and fallback.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "pergola.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if err := cli.RunGraph(path, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
