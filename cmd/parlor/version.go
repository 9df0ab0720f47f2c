package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parlorhq/parlor"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of parlor",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("parlor version %s\n", strings.TrimSpace(parlor.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
