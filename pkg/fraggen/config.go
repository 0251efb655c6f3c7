package fraggen

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/jensneuse/abstractlogger"
)

type NameCase string

const (
	NameCaseAsIs  NameCase = ""
	NameCaseCamel NameCase = "camel"
)

func ParseNameCase(s string) (NameCase, error) {
	switch NameCase(s) {
	case NameCaseAsIs, NameCaseCamel:
		return NameCase(s), nil
	default:
		return NameCaseAsIs, fmt.Errorf("unsupported name case %q, want %q or %q", s, NameCaseAsIs, NameCaseCamel)
	}
}

func (n NameCase) apply(typeName string) string {
	if n == NameCaseCamel {
		return strcase.ToCamel(typeName)
	}
	return typeName
}

type Config struct {
	// Prefix and Suffix surround the type name in every fragment name.
	Prefix string
	Suffix string
	// Typename selects __typename first in object and union fragments.
	Typename bool
	// Quiet drops warnings from the report. Skipped types stay skipped.
	Quiet bool
	// NameCase transforms the type name before Prefix and Suffix are applied.
	NameCase NameCase
	// Arguments renders field arguments as variables.
	Arguments bool
	// SpreadInterfaces spreads the fragments of implemented interfaces
	// instead of repeating the fields they declare.
	SpreadInterfaces bool
	// SkipDeprecated leaves out fields marked @deprecated.
	SkipDeprecated bool
	// Workers bounds the number of selection sets built concurrently.
	// Values below 2 build sequentially.
	Workers int
	Logger  abstractlogger.Logger
}

func DefaultConfig() Config {
	return Config{
		Suffix:    "Fields",
		Arguments: true,
		Workers:   1,
		Logger:    abstractlogger.NoopLogger,
	}
}
