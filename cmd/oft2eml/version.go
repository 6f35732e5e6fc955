package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of oft2eml",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("oft2eml %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
