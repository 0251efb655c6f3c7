package typegraph

import (
	"github.com/vektah/gqlparser/v2/ast"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindScalar
	KindEnum
	KindInputObject
	KindObject
	KindInterface
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "SCALAR"
	case KindEnum:
		return "ENUM"
	case KindInputObject:
		return "INPUT_OBJECT"
	case KindObject:
		return "OBJECT"
	case KindInterface:
		return "INTERFACE"
	case KindUnion:
		return "UNION"
	default:
		return "UNKNOWN"
	}
}

// IsComposite reports whether values of the kind need a selection set.
func (k Kind) IsComposite() bool {
	return k == KindObject || k == KindInterface || k == KindUnion
}

// IsLeaf reports whether the kind is selected without a selection set.
func (k Kind) IsLeaf() bool {
	return k == KindScalar || k == KindEnum
}

func kindOf(kind ast.DefinitionKind) Kind {
	switch kind {
	case ast.Scalar:
		return KindScalar
	case ast.Enum:
		return KindEnum
	case ast.InputObject:
		return KindInputObject
	case ast.Object:
		return KindObject
	case ast.Interface:
		return KindInterface
	case ast.Union:
		return KindUnion
	default:
		return KindUnknown
	}
}

// TypeRef is a reference to a named type with its wrapping modifiers.
// Only the outermost list and the non-null flags matter for selections.
type TypeRef struct {
	Named   string
	List    bool
	NonNull bool
	text    string
}

func (r TypeRef) String() string {
	if r.text != "" {
		return r.text
	}
	return r.Named
}

func refOf(t *ast.Type) TypeRef {
	if t == nil {
		return TypeRef{}
	}
	return TypeRef{
		Named:   t.Name(),
		List:    t.Elem != nil,
		NonNull: t.NonNull,
		text:    t.String(),
	}
}

type Argument struct {
	Name string
	Type TypeRef
}

type Field struct {
	Name       string
	Type       TypeRef
	Arguments  []Argument
	Deprecated bool
}

// Type is a named schema declaration. The kind specific collections are only
// reachable through the Graph accessors.
type Type struct {
	Name    string
	Kind    Kind
	BuiltIn bool

	fields       []Field
	members      []string
	interfaces   []string
	implementors []string
	inputFields  []Field
}

// InputFields returns the fields of an input object type, nil for any other kind.
func (t *Type) InputFields() []Field {
	if t.Kind != KindInputObject {
		return nil
	}
	return t.inputFields
}

func newType(def *ast.Definition) *Type {
	t := &Type{
		Name:    def.Name,
		Kind:    kindOf(def.Kind),
		BuiltIn: isBuiltIn(def),
	}
	t.extend(def)
	return t
}

func (t *Type) extend(def *ast.Definition) {
	switch t.Kind {
	case KindObject, KindInterface:
		t.fields = appendFields(t.fields, def.Fields)
		t.interfaces = appendUnique(t.interfaces, def.Interfaces)
	case KindInputObject:
		t.inputFields = appendFields(t.inputFields, def.Fields)
	case KindUnion:
		t.members = appendUnique(t.members, def.Types)
	}
}

func appendFields(fields []Field, defs ast.FieldList) []Field {
	for _, def := range defs {
		field := Field{
			Name:       def.Name,
			Type:       refOf(def.Type),
			Deprecated: def.Directives.ForName("deprecated") != nil,
		}
		for _, arg := range def.Arguments {
			field.Arguments = append(field.Arguments, Argument{
				Name: arg.Name,
				Type: refOf(arg.Type),
			})
		}
		fields = append(fields, field)
	}
	return fields
}

func appendUnique(list []string, names []string) []string {
Names:
	for _, name := range names {
		for _, existing := range list {
			if existing == name {
				continue Names
			}
		}
		list = append(list, name)
	}
	return list
}

func isBuiltIn(def *ast.Definition) bool {
	if def.BuiltIn {
		return true
	}
	return def.Position != nil && def.Position.Src != nil && def.Position.Src.BuiltIn
}
