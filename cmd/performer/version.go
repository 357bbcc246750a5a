package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/performer"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of performer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("performer version %s\n", performer.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
