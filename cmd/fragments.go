package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hroi/fraggen/pkg/fragmentprinter"
	"github.com/hroi/fraggen/pkg/manifest"
)

// fragmentsCmd represents the fragments command
var fragmentsCmd = &cobra.Command{
	Use:   "fragments",
	Short: "fragments writes one fragment definition per object, interface and union type",
	Long: `fragments writes one GraphQL fragment definition per object, interface and union type of the schema.
Output is only written when every fragment could be generated. Types without anything to select are
skipped with a warning.`,
	Example: "fraggen fragments --schema schema.graphql --prefix Gen --suffix Frag --typename > fragments.graphql",
	Args:    cobra.NoArgs,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, sync, err := newLogger()
		if err != nil {
			return err
		}
		defer sync()

		s, err := synthesize(cmd, logger)
		if err != nil {
			return err
		}

		buf := bytes.Buffer{}
		if err := fragmentprinter.Print(s.result.Fragments, &buf); err != nil {
			return err
		}
		if err := writeOutput(cmd.OutOrStdout(), viper.GetString("out"), buf.Bytes()); err != nil {
			return err
		}

		manifestFile := viper.GetString("manifest")
		if manifestFile == "" {
			return nil
		}
		buf.Reset()
		if err := manifest.Build(s.result.Fragments, s.sources...).WriteYAML(&buf); err != nil {
			return err
		}
		return os.WriteFile(manifestFile, buf.Bytes(), 0644)
	},
}

// writeOutput writes data to outFile, or to stdout if outFile is empty.
func writeOutput(stdout io.Writer, outFile string, data []byte) error {
	if outFile == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(outFile, data, 0644)
}

func init() {
	rootCmd.AddCommand(fragmentsCmd)

	addSynthesisFlags(fragmentsCmd)
	fragmentsCmd.Flags().StringP("out", "o", "", "out is a flag to redirect the output directly into a file (optional)")
	fragmentsCmd.Flags().String("manifest", "", "manifest also writes a YAML manifest of the generated fragments to this file (optional)")
}
