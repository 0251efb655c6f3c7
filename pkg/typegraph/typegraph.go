// Package typegraph presents a parsed GraphQL schema document as a queryable
// graph of named types.
//
// The graph is built once from an *ast.SchemaDocument and never mutated
// afterwards. Types are kept in declaration order, type extensions are folded
// into the type they extend.
package typegraph

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

var (
	ErrUnknownType = errors.New("unknown type")
	ErrWrongKind   = errors.New("operation not supported for type kind")
)

// UnknownTypeError is returned when a name cannot be resolved against the graph.
// Referrer is the schema coordinate that referenced the missing type, if known.
type UnknownTypeError struct {
	Name     string
	Referrer string
}

func (e *UnknownTypeError) Error() string {
	if e.Referrer == "" {
		return fmt.Sprintf("unknown type %q", e.Name)
	}
	return fmt.Sprintf("unknown type %q referenced by %s", e.Name, e.Referrer)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

type Graph struct {
	declared []*Type
	byName   map[string]*Type
}

// New builds a Graph from doc. Definitions coming from built-in sources (the
// gqlparser prelude) are resolvable through Lookup but not listed by AllTypes.
func New(doc *ast.SchemaDocument) *Graph {
	g := &Graph{
		byName: make(map[string]*Type, len(doc.Definitions)),
	}

	for _, def := range doc.Definitions {
		g.add(def)
	}
	for _, ext := range doc.Extensions {
		g.add(ext)
	}

	g.indexImplementors()

	return g
}

func (g *Graph) add(def *ast.Definition) {
	existing, ok := g.byName[def.Name]
	if !ok {
		t := newType(def)
		g.byName[def.Name] = t
		if !t.BuiltIn {
			g.declared = append(g.declared, t)
		}
		return
	}
	existing.extend(def)
}

func (g *Graph) indexImplementors() {
	for _, t := range g.declared {
		if t.Kind != KindObject {
			continue
		}
		for _, name := range t.interfaces {
			iface, ok := g.byName[name]
			if !ok || iface.Kind != KindInterface {
				continue
			}
			iface.implementors = append(iface.implementors, t.Name)
		}
	}
}

// AllTypes returns every user declared type in declaration order.
func (g *Graph) AllTypes() []*Type {
	out := make([]*Type, len(g.declared))
	copy(out, g.declared)
	return out
}

func (g *Graph) Lookup(name string) (*Type, error) {
	t, ok := g.byName[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return t, nil
}

// LookupReferenced is Lookup for a name found at a schema coordinate such as
// "Post.author", which is reported in the error.
func (g *Graph) LookupReferenced(name, referrer string) (*Type, error) {
	t, ok := g.byName[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name, Referrer: referrer}
	}
	return t, nil
}

func (g *Graph) FieldsOf(t *Type) ([]Field, error) {
	if t.Kind != KindObject && t.Kind != KindInterface {
		return nil, wrongKind("FieldsOf", t)
	}
	out := make([]Field, len(t.fields))
	copy(out, t.fields)
	return out, nil
}

func (g *Graph) MembersOf(t *Type) ([]string, error) {
	if t.Kind != KindUnion {
		return nil, wrongKind("MembersOf", t)
	}
	return copyStrings(t.members), nil
}

func (g *Graph) ImplementorsOf(t *Type) ([]string, error) {
	if t.Kind != KindInterface {
		return nil, wrongKind("ImplementorsOf", t)
	}
	return copyStrings(t.implementors), nil
}

// InterfacesOf returns the interfaces t declares to implement.
func (g *Graph) InterfacesOf(t *Type) ([]string, error) {
	if t.Kind != KindObject && t.Kind != KindInterface {
		return nil, wrongKind("InterfacesOf", t)
	}
	return copyStrings(t.interfaces), nil
}

func wrongKind(op string, t *Type) error {
	return fmt.Errorf("%s(%s): %w: %s", op, t.Name, ErrWrongKind, t.Kind)
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
