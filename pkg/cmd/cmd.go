// Package cmd contains the command line applications for the project.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "exceldelivery",
		Short: "Excel/PDF delivery service for small teams",
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose debug output")

	registerServeCommand()
	registerConfigsCommands()
	registerDBCommands()
	registerKVCommands()
	registerMQCommands()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
