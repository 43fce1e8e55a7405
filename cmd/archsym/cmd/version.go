package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the archsym version",
	Args:  exactArgs(0),
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println("archsym", Version)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
