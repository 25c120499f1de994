package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcv",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcv v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Section Verification Tool")
		fmt.Println("Allowable-stress method per RD 2229/1939")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
