// package unsafeparser is for testing purposes only when error handling is overhead and panics are ok
package unsafeparser

import (
	"os"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hroi/fraggen/pkg/schemaloader"
	"github.com/hroi/fraggen/pkg/typegraph"
)

func ParseSchemaString(input string) *ast.SchemaDocument {
	doc, err := schemaloader.New().LoadString(input)
	if err != nil {
		panic(err)
	}
	return doc
}

// ParseGraphString builds a graph from a validated schema.
func ParseGraphString(input string) *typegraph.Graph {
	return typegraph.New(ParseSchemaString(input))
}

// ParseGraphStringUnvalidated skips schema validation, so dangling type
// references survive into the graph.
func ParseGraphStringUnvalidated(input string) *typegraph.Graph {
	loader := schemaloader.Loader{Validate: false}
	doc, err := loader.LoadString(input)
	if err != nil {
		panic(err)
	}
	return typegraph.New(doc)
}

func ParseGraphFile(filePath string) *typegraph.Graph {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	return ParseGraphString(string(fileBytes))
}
