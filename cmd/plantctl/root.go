// Console client for the plant tracker API.
package main

import (
	"github.com/spf13/cobra"
)

var flagServer string

var rootCmd = &cobra.Command{
	Use:          "plantctl",
	Short:        "plantctl is a console client for the plant tracker API",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "http://localhost:8080",
		"base URL of the plant tracker API")

	rootCmd.AddCommand(plantsCmd)
	rootCmd.AddCommand(careCmd)
	rootCmd.AddCommand(informationCmd)
	rootCmd.AddCommand(locationsCmd)
}
