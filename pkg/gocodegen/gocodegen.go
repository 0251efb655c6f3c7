// Package gocodegen renders synthesized fragments into a Go source file of
// string constants, so Go clients can embed fragments into their queries.
package gocodegen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"

	"github.com/hroi/fraggen/pkg/fraggen"
	"github.com/hroi/fraggen/pkg/fragmentprinter"
)

const allFragmentsIdentifier = "AllFragments"

type Config struct {
	PackageName string
	// ConstSuffix is appended to every constant name to avoid naming collisions.
	ConstSuffix string
}

type CodeGen struct {
	config Config
	file   *File
}

func NewCodeGen(config Config) *CodeGen {
	return &CodeGen{
		config: config,
	}
}

func (c *CodeGen) Generate(fragments []fraggen.Fragment, w io.Writer) (int, error) {
	if c.config.PackageName == "" {
		return 0, fmt.Errorf("gocodegen: package name must not be empty")
	}

	c.file = NewFile(c.config.PackageName)
	c.file.HeaderComment("Code generated by fraggen. DO NOT EDIT.")

	definitions := make([]string, 0, len(fragments))
	identifiers := make(map[string]string, len(fragments))

	for i := range fragments {
		definition, err := fragmentprinter.PrintFragment(fragments[i])
		if err != nil {
			return 0, err
		}
		definitions = append(definitions, definition)

		identifier := c.identifier(fragments[i].Name)
		if other, exists := identifiers[identifier]; exists {
			return 0, fmt.Errorf("gocodegen: fragments %q and %q both map to constant %s", other, fragments[i].Name, identifier)
		}
		identifiers[identifier] = fragments[i].Name

		c.file.Comment(fmt.Sprintf("%s is the fragment %s on type %s.", identifier, fragments[i].Name, fragments[i].TypeName))
		c.file.Const().Id(identifier).Op("=").Lit(definition)
	}

	if _, exists := identifiers[allFragmentsIdentifier]; exists {
		return 0, fmt.Errorf("gocodegen: constant %s is reserved", allFragmentsIdentifier)
	}
	c.file.Comment(allFragmentsIdentifier + " holds every fragment definition.")
	c.file.Const().Id(allFragmentsIdentifier).Op("=").Lit(strings.Join(definitions, "\n\n") + "\n")

	buf := bytes.Buffer{}
	if err := c.file.Render(&buf); err != nil {
		return 0, err
	}
	return w.Write(buf.Bytes())
}

func (c *CodeGen) identifier(fragmentName string) string {
	return strcase.ToCamel(fragmentName) + c.config.ConstSuffix
}
