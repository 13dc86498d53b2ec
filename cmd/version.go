package cmd

import (
	"fmt"

	"github.com/orthanc-tools/embedres/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the embedres version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "embedres %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
