package cmd

import (
	"github.com/spf13/cobra"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "gen generates source code from the fragments of a schema",
}

func init() {
	rootCmd.AddCommand(genCmd)
}
