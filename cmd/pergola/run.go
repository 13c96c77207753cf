package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pergola/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [manifest]",
	Short: "Run the interactive menu",
	Long: `Loads the manifest (pergola.yaml by default) and drives the menu loop
until an option stops it or input runs out.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "pergola.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		headless, _ := cmd.Flags().GetBool("headless")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		pause, _ := cmd.Flags().GetBool("pause")

		opts := cli.RunOptions{
			ManifestPath: path,
			LogLevel:     viper.GetString("log-level"),
			LogFormat:    viper.GetString("log-format"),
			Headless:     headless,
			NoClear:      viper.GetBool("no-clear"),
			NoBanner:     noBanner,
			Pause:        pause,
		}
		if err := cli.RunSession(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run without terminal niceties (banner, line editor, pauses)")
	runCmd.Flags().Bool("no-banner", false, "Skip the startup banner")
	runCmd.Flags().Bool("pause", false, "Pause after each action even without a terminal")

	// Bare `pergola` behaves like `pergola run`.
	rootCmd.Run = runCmd.Run
}
