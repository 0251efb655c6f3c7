package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hroi/fraggen/pkg/manifest"
	"github.com/hroi/fraggen/pkg/schemaloader"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:     "verify",
	Short:   "verify checks that a fragment manifest was generated from the given schema",
	Example: "fraggen verify --manifest fragments.yaml --schema schema.graphql",
	Args:    cobra.NoArgs,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := schemaFiles()
		if err != nil {
			return err
		}
		sources, err := schemaloader.ReadFiles(files...)
		if err != nil {
			return err
		}

		f, err := os.Open(viper.GetString("manifest"))
		if err != nil {
			return err
		}
		defer f.Close()

		m, err := manifest.ReadYAML(f)
		if err != nil {
			return err
		}

		if checksum := manifest.Checksum(sourceBytes(sources)...); checksum != m.SchemaChecksum {
			return fmt.Errorf("manifest is stale: schema checksum %s, manifest was generated from %s", checksum, m.SchemaChecksum)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "manifest up to date (%d fragments)\n", len(m.Fragments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringSliceP("schema", "s", nil, "schema is the GraphQL schema file the manifest should match, in the order used for generation (required)")
	verifyCmd.Flags().String("manifest", "", "manifest is the file written by fragments --manifest (required)")
	_ = verifyCmd.MarkFlagRequired("manifest")
}
