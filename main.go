package main

import (
	"os"

	"github.com/cottand/streamtype/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var configPath string

var rootCmd = &cobra.Command{
	Use:          "streamtype [subcommand]",
	Short:        "streamtype\n inspect the types of a stream pipeline language",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return cmd.Setup(configPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.AddCommand(cmd.RegistryCmd)
	rootCmd.AddCommand(cmd.InstantiateCmd)
}
