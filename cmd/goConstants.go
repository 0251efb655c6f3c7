package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hroi/fraggen/pkg/gocodegen"
)

// goConstantsCmd represents the goConstants command
var goConstantsCmd = &cobra.Command{
	Use:   "goConstants",
	Short: "Generates a go file holding every fragment as a string constant",
	Long: `goConstants generates a go file with one string constant per generated fragment and a constant AllFragments
holding every definition. Go clients can append the constants to their query documents instead of embedding
a separate .graphql file.`,
	Example: `fraggen gen goConstants -s ./schema.graphql -p fragments -o ./fragments/fragments.go`,
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

		config := gocodegen.Config{
			PackageName: viper.GetString("packageName"),
			ConstSuffix: viper.GetString("constSuffix"),
		}

		buf := bytes.Buffer{}
		if _, err := gocodegen.NewCodeGen(config).Generate(s.result.Fragments, &buf); err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), viper.GetString("out"), buf.Bytes())
	},
}

func init() {
	genCmd.AddCommand(goConstantsCmd)

	addSynthesisFlags(goConstantsCmd)

	goConstantsCmd.Flags().StringP("packageName", "p", "", "packageName is the package for the generated code (required)")
	_ = goConstantsCmd.MarkFlagRequired("packageName")

	goConstantsCmd.Flags().String("constSuffix", "", "constSuffix gets appended to all constant names to avoid naming collisions (optional)")

	goConstantsCmd.Flags().StringP("out", "o", "", "out is a flag to redirect the output directly into a file (optional)")
}
