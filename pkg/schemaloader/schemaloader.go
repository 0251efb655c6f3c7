// Package schemaloader reads GraphQL schema sources into a schema document.
package schemaloader

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

// SchemaLoadError wraps any failure to read, parse or validate schema sources.
type SchemaLoadError struct {
	Source string
	Err    error
}

func (e *SchemaLoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("load schema: %s", e.Err)
	}
	return fmt.Sprintf("load schema %s: %s", e.Source, e.Err)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Err
}

type Loader struct {
	// Validate runs the gqlparser schema validator over the parsed document.
	Validate bool
}

func New() *Loader {
	return &Loader{Validate: true}
}

// Load parses sources together with the gqlparser prelude.
func (l *Loader) Load(sources ...*ast.Source) (*ast.SchemaDocument, error) {
	if len(sources) == 0 {
		return nil, &SchemaLoadError{Err: errors.New("no schema sources")}
	}

	all := make([]*ast.Source, 0, len(sources)+1)
	all = append(all, validator.Prelude)
	all = append(all, sources...)

	// The validator folds extensions and root fields into the definitions it
	// is given, so it works on its own parse of the sources.
	if l.Validate {
		_, err := validator.LoadSchema(all...)
		if err != nil {
			return nil, &SchemaLoadError{Source: sourceNames(sources), Err: errors.Wrap(err, "validate")}
		}
	}

	doc, err := parser.ParseSchemas(all...)
	if err != nil {
		return nil, &SchemaLoadError{Source: sourceNames(sources), Err: errors.Wrap(err, "parse")}
	}

	return doc, nil
}

func (l *Loader) LoadString(input string) (*ast.SchemaDocument, error) {
	return l.Load(&ast.Source{Name: "schema.graphql", Input: input})
}

// LoadFiles reads every path and loads them as one schema.
func (l *Loader) LoadFiles(paths ...string) (*ast.SchemaDocument, error) {
	sources, err := ReadFiles(paths...)
	if err != nil {
		return nil, err
	}
	return l.Load(sources...)
}

func ReadFiles(paths ...string) ([]*ast.Source, error) {
	sources := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &SchemaLoadError{Source: path, Err: errors.WithStack(err)}
		}
		sources = append(sources, &ast.Source{Name: path, Input: string(data)})
	}
	return sources, nil
}

func sourceNames(sources []*ast.Source) string {
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.Name)
	}
	return strings.Join(names, ", ")
}
