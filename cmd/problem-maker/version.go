package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of problem-maker",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("problem-maker %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
