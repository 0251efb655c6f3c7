package fraggen

import (
	"github.com/hroi/fraggen/pkg/typegraph"
)

const typenameField = "__typename"

type SelectionKind int

const (
	SelectionKindUnknown SelectionKind = iota
	SelectionKindField
	SelectionKindFragmentSpread
	SelectionKindInlineFragment
)

// Selection is one entry of a selection set.
//
// For SelectionKindField Name is the field name, Arguments the rendered field
// arguments and SelectionSet the sub selection of composite fields.
// For SelectionKindFragmentSpread Name is the fragment name.
// For SelectionKindInlineFragment TypeCondition names the type and
// SelectionSet holds the conditioned selections.
type Selection struct {
	Kind          SelectionKind
	Name          string
	Arguments     []Argument
	TypeCondition string
	SelectionSet  []Selection
}

// Argument is a field argument bound to a variable of the same name, or for
// input object arguments, an object of variables named after the input fields.
type Argument struct {
	Name     string
	Variable string
	Object   []Argument
}

func (a Argument) IsObject() bool {
	return a.Object != nil
}

func FieldSelection(name string, arguments ...Argument) Selection {
	return Selection{
		Kind:      SelectionKindField,
		Name:      name,
		Arguments: arguments,
	}
}

func FragmentSpread(fragmentName string) Selection {
	return Selection{
		Kind: SelectionKindFragmentSpread,
		Name: fragmentName,
	}
}

func InlineFragment(typeCondition string, selections ...Selection) Selection {
	return Selection{
		Kind:          SelectionKindInlineFragment,
		TypeCondition: typeCondition,
		SelectionSet:  selections,
	}
}

type Fragment struct {
	Name         string
	TypeName     string
	TypeKind     typegraph.Kind
	SelectionSet []Selection
}

// Spreads returns the names of all fragments spread anywhere in f, in order of appearance.
func (f Fragment) Spreads() []string {
	var out []string
	var walk func(selections []Selection)
	walk = func(selections []Selection) {
		for i := range selections {
			if selections[i].Kind == SelectionKindFragmentSpread {
				out = append(out, selections[i].Name)
			}
			walk(selections[i].SelectionSet)
		}
	}
	walk(f.SelectionSet)
	return out
}
