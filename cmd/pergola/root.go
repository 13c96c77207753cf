package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "pergola",
	Short: "Pergola turns a YAML manifest into an interactive command menu",
	Long: `Pergola renders a looping text menu: it prints the declared options,
reads a line, matches it against the trigger patterns and invokes the
matching action until one of them stops the loop.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log verbosity (debug, info, warn or error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log encoding (text or json)")
	rootCmd.PersistentFlags().Bool("no-clear", false, "Keep previous frames on screen instead of clearing")

	// Bind flags to viper so PERGOLA_* environment variables can override them
	for _, name := range []string{"log-level", "log-format", "no-clear"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}
	viper.SetEnvPrefix("PERGOLA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
