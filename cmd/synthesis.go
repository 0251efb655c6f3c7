package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/hroi/fraggen/pkg/fraggen"
	"github.com/hroi/fraggen/pkg/schemaloader"
	"github.com/hroi/fraggen/pkg/typegraph"
)

// addSynthesisFlags registers the flags shared by every command that synthesizes fragments.
func addSynthesisFlags(cmd *cobra.Command) {
	defaults := fraggen.DefaultConfig()

	cmd.Flags().StringSliceP("schema", "s", nil, "schema is the GraphQL schema file, repeat it to load a schema split over several files (required)")
	cmd.Flags().String("prefix", defaults.Prefix, "prefix is prepended to every fragment name")
	cmd.Flags().String("suffix", defaults.Suffix, "suffix is appended to every fragment name")
	cmd.Flags().Bool("typename", defaults.Typename, "typename adds __typename to object and union fragments")
	cmd.Flags().BoolP("quiet", "q", defaults.Quiet, "quiet suppresses warnings")
	cmd.Flags().String("nameCase", string(defaults.NameCase), `nameCase transforms type names before prefix and suffix are applied ("" or "camel")`)
	cmd.Flags().Bool("arguments", defaults.Arguments, "arguments renders field arguments as variables")
	cmd.Flags().Bool("spreadInterfaces", defaults.SpreadInterfaces, "spreadInterfaces spreads implemented interface fragments instead of repeating their fields")
	cmd.Flags().Bool("skipDeprecated", defaults.SkipDeprecated, "skipDeprecated leaves out fields marked @deprecated")
	cmd.Flags().Bool("validate", true, "validate checks the schema before generating fragments")
	cmd.Flags().Int("workers", defaults.Workers, "workers is the number of selection sets built concurrently")
}

// bindFlags binds the flags of the running command only, so commands sharing
// flag names do not override each other's bindings.
func bindFlags(cmd *cobra.Command, args []string) error {
	return viper.BindPFlags(cmd.Flags())
}

func synthesisConfig(logger abstractlogger.Logger) (fraggen.Config, error) {
	nameCase, err := fraggen.ParseNameCase(viper.GetString("nameCase"))
	if err != nil {
		return fraggen.Config{}, err
	}

	return fraggen.Config{
		Prefix:           viper.GetString("prefix"),
		Suffix:           viper.GetString("suffix"),
		Typename:         viper.GetBool("typename"),
		Quiet:            viper.GetBool("quiet"),
		NameCase:         nameCase,
		Arguments:        viper.GetBool("arguments"),
		SpreadInterfaces: viper.GetBool("spreadInterfaces"),
		SkipDeprecated:   viper.GetBool("skipDeprecated"),
		Workers:          viper.GetInt("workers"),
		Logger:           logger,
	}, nil
}

func schemaFiles() ([]string, error) {
	files := viper.GetStringSlice("schema")
	if len(files) == 0 {
		return nil, fmt.Errorf("no schema file given, use --schema")
	}
	return files, nil
}

type synthesis struct {
	result  *fraggen.Result
	sources [][]byte
}

// synthesize loads the configured schema files and synthesizes their fragments.
// Warnings are written to stderr unless quiet.
func synthesize(cmd *cobra.Command, logger abstractlogger.Logger) (*synthesis, error) {
	files, err := schemaFiles()
	if err != nil {
		return nil, err
	}

	config, err := synthesisConfig(logger)
	if err != nil {
		return nil, err
	}

	sources, err := schemaloader.ReadFiles(files...)
	if err != nil {
		return nil, err
	}

	loader := schemaloader.Loader{Validate: viper.GetBool("validate")}
	doc, err := loader.Load(sources...)
	if err != nil {
		return nil, err
	}
	logger.Debug("schema loaded",
		abstractlogger.String("files", strings.Join(files, ",")),
		abstractlogger.Int("definitions", len(doc.Definitions)),
	)

	result, err := fraggen.Synthesize(typegraph.New(doc), config)
	if err != nil {
		return nil, err
	}

	printWarnings(cmd.ErrOrStderr(), result.Report)

	return &synthesis{
		result:  result,
		sources: sourceBytes(sources),
	}, nil
}

func sourceBytes(sources []*ast.Source) [][]byte {
	raw := make([][]byte, 0, len(sources))
	for _, src := range sources {
		raw = append(raw, []byte(src.Input))
	}
	return raw
}

func printWarnings(w io.Writer, report fraggen.Report) {
	warn := color.New(color.FgYellow)
	for _, warning := range report.Warnings {
		_, _ = warn.Fprintf(w, "warning: %s\n", warning)
	}
}

// newLogger returns a zap backed logger writing to stderr. Without verbose
// only warnings and errors are written.
func newLogger() (abstractlogger.Logger, func(), error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		config = zap.NewDevelopmentConfig()
	}

	logger, err := config.Build()
	if err != nil {
		return nil, nil, err
	}

	return abstractlogger.NewZapLogger(logger, abstractlogger.DebugLevel), func() {
		_ = logger.Sync()
	}, nil
}
