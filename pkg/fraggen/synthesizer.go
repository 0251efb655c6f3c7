// Package fraggen synthesizes one GraphQL fragment definition per composite
// type of a schema.
//
// Composite typed fields are never expanded inline. They always select a
// spread of the fragment generated for their own type, so the selection set
// of every fragment is exactly one level deep and cyclic schemas need no
// cycle detection.
package fraggen

import (
	"github.com/jensneuse/abstractlogger"
	"golang.org/x/sync/errgroup"

	"github.com/hroi/fraggen/pkg/typegraph"
)

type Result struct {
	// Fragments in declaration order of their types.
	Fragments []Fragment
	Report    Report
}

type Synthesizer struct {
	config Config
	log    abstractlogger.Logger
}

func New(config Config) *Synthesizer {
	log := config.Logger
	if log == nil {
		log = abstractlogger.NoopLogger
	}
	return &Synthesizer{
		config: config,
		log:    log,
	}
}

// Synthesize is a shorthand for New(config).Synthesize(graph).
func Synthesize(graph *typegraph.Graph, config Config) (*Result, error) {
	return New(config).Synthesize(graph)
}

// FragmentName returns the fragment name generated for typeName.
func (s *Synthesizer) FragmentName(typeName string) string {
	return s.config.Prefix + s.config.NameCase.apply(typeName) + s.config.Suffix
}

// Synthesize builds the fragments of every object, interface and union type
// of graph. It is all or nothing: on error no fragments are returned.
func (s *Synthesizer) Synthesize(graph *typegraph.Graph) (*Result, error) {
	run := &synthesis{
		Synthesizer:   s,
		graph:         graph,
		fragmentNames: map[string]string{},
		owners:        map[string]string{},
		selectable:    map[string]bool{},
	}

	if err := run.nameFragments(); err != nil {
		return nil, err
	}
	if err := run.resolve(); err != nil {
		return nil, err
	}
	run.markSelectable()
	if err := run.buildSelectionSets(); err != nil {
		return nil, err
	}

	return run.collect(), nil
}

// plan is the per type state of a synthesis run.
type plan struct {
	typ        *typegraph.Type
	name       string
	fields     []resolvedField
	interfaces []resolvedInterface
	members    []*typegraph.Type
	selections []Selection
}

type resolvedField struct {
	field     typegraph.Field
	target    *typegraph.Type
	arguments []Argument
}

type resolvedInterface struct {
	typ *typegraph.Type
	// fields declared by the interface, never repeated next to its spread
	fields []string
	// interfaces the interface implements itself
	implements []string
}

// synthesis is the private context of a single Synthesize call.
type synthesis struct {
	*Synthesizer
	graph *typegraph.Graph
	plans []*plan
	// type name -> fragment name
	fragmentNames map[string]string
	// fragment name -> type name
	owners     map[string]string
	selectable map[string]bool
}

func (s *synthesis) nameFragments() error {
	for _, t := range s.graph.AllTypes() {
		if !t.Kind.IsComposite() {
			continue
		}
		name := s.FragmentName(t.Name)
		if owner, exists := s.owners[name]; exists {
			return &DuplicateFragmentNameError{
				Name:   name,
				First:  owner,
				Second: t.Name,
			}
		}
		s.owners[name] = t.Name
		s.fragmentNames[t.Name] = name
		s.plans = append(s.plans, &plan{typ: t, name: name})
	}
	return nil
}

func (s *synthesis) resolve() error {
	for _, p := range s.plans {
		var err error
		switch p.typ.Kind {
		case typegraph.KindObject, typegraph.KindInterface:
			err = s.resolveFields(p)
		case typegraph.KindUnion:
			err = s.resolveMembers(p)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *synthesis) resolveFields(p *plan) error {
	fields, err := s.graph.FieldsOf(p.typ)
	if err != nil {
		return err
	}

	for _, field := range fields {
		if s.config.SkipDeprecated && field.Deprecated {
			continue
		}
		coordinate := p.typ.Name + "." + field.Name
		target, err := s.graph.LookupReferenced(field.Type.Named, coordinate)
		if err != nil {
			return err
		}
		resolved := resolvedField{
			field:  field,
			target: target,
		}
		if s.config.Arguments {
			resolved.arguments, err = s.resolveArguments(coordinate, field.Arguments)
			if err != nil {
				return err
			}
		}
		p.fields = append(p.fields, resolved)
	}

	if !s.config.SpreadInterfaces {
		return nil
	}

	names, err := s.graph.InterfacesOf(p.typ)
	if err != nil {
		return err
	}
	for _, name := range names {
		iface, err := s.graph.LookupReferenced(name, p.typ.Name)
		if err != nil {
			return err
		}
		if iface.Kind != typegraph.KindInterface {
			continue
		}
		resolved, err := s.resolveInterface(iface)
		if err != nil {
			return err
		}
		p.interfaces = append(p.interfaces, resolved)
	}
	return nil
}

func (s *synthesis) resolveInterface(iface *typegraph.Type) (resolvedInterface, error) {
	fields, err := s.graph.FieldsOf(iface)
	if err != nil {
		return resolvedInterface{}, err
	}
	implements, err := s.graph.InterfacesOf(iface)
	if err != nil {
		return resolvedInterface{}, err
	}
	resolved := resolvedInterface{
		typ:        iface,
		fields:     make([]string, 0, len(fields)),
		implements: implements,
	}
	for i := range fields {
		resolved.fields = append(resolved.fields, fields[i].Name)
	}
	return resolved, nil
}

// resolveArguments binds every argument to a variable of the same name.
// Input object arguments expand one level into an object of variables.
func (s *synthesis) resolveArguments(coordinate string, arguments []typegraph.Argument) ([]Argument, error) {
	if len(arguments) == 0 {
		return nil, nil
	}

	out := make([]Argument, 0, len(arguments))
	for _, arg := range arguments {
		argType, err := s.graph.LookupReferenced(arg.Type.Named, coordinate+"("+arg.Name+":)")
		if err != nil {
			return nil, err
		}
		if argType.Kind != typegraph.KindInputObject {
			out = append(out, Argument{Name: arg.Name, Variable: arg.Name})
			continue
		}
		inputFields := argType.InputFields()
		object := make([]Argument, 0, len(inputFields))
		for _, inputField := range inputFields {
			object = append(object, Argument{Name: inputField.Name, Variable: inputField.Name})
		}
		out = append(out, Argument{Name: arg.Name, Object: object})
	}
	return out, nil
}

func (s *synthesis) resolveMembers(p *plan) error {
	names, err := s.graph.MembersOf(p.typ)
	if err != nil {
		return err
	}
	for _, name := range names {
		member, err := s.graph.LookupReferenced(name, p.typ.Name)
		if err != nil {
			return err
		}
		if !member.Kind.IsComposite() {
			continue
		}
		p.members = append(p.members, member)
	}
	return nil
}

// markSelectable computes which types end up with a non empty selection set.
// A composite field or union member is only selected when its type does, so
// every spread points at a fragment that is emitted. Iterating from the types
// with leaf selections makes types that only reach each other (A.b: B, B.a: A)
// unselectable instead of spreading into each other forever.
func (s *synthesis) markSelectable() {
	for changed := true; changed; {
		changed = false
		for _, p := range s.plans {
			if s.selectable[p.typ.Name] || !s.hasSelection(p) {
				continue
			}
			s.selectable[p.typ.Name] = true
			changed = true
		}
	}
}

// hasSelection must agree with selectionSet returning a non empty set.
func (s *synthesis) hasSelection(p *plan) bool {
	if p.typ.Kind == typegraph.KindUnion {
		if s.config.Typename {
			return true
		}
		for _, member := range p.members {
			if s.selectable[member.Name] {
				return true
			}
		}
		return false
	}

	if s.config.Typename && p.typ.Kind == typegraph.KindObject {
		return true
	}
	for _, iface := range p.interfaces {
		if s.selectable[iface.typ.Name] {
			return true
		}
	}
	for i := range p.fields {
		if s.selectsField(p.fields[i]) {
			return true
		}
	}
	return false
}

func (s *synthesis) selectsField(f resolvedField) bool {
	if f.target.Kind.IsLeaf() {
		return true
	}
	return f.target.Kind.IsComposite() && s.selectable[f.target.Name]
}

func (s *synthesis) buildSelectionSets() error {
	if s.config.Workers < 2 {
		for _, p := range s.plans {
			p.selections = s.selectionSet(p)
		}
		return nil
	}

	var group errgroup.Group
	group.SetLimit(s.config.Workers)
	for _, p := range s.plans {
		group.Go(func() error {
			p.selections = s.selectionSet(p)
			return nil
		})
	}
	return group.Wait()
}

func (s *synthesis) selectionSet(p *plan) []Selection {
	if p.typ.Kind == typegraph.KindUnion {
		return s.unionSelectionSet(p)
	}
	return s.fieldSelectionSet(p)
}

func (s *synthesis) fieldSelectionSet(p *plan) []Selection {
	var selections []Selection
	if s.config.Typename && p.typ.Kind == typegraph.KindObject {
		selections = append(selections, FieldSelection(typenameField))
	}

	var inherited map[string]struct{}
	for _, iface := range p.spreadInterfaces(s.selectable) {
		selections = append(selections, FragmentSpread(s.fragmentNames[iface.typ.Name]))
		if inherited == nil {
			inherited = make(map[string]struct{}, len(iface.fields))
		}
		for _, name := range iface.fields {
			inherited[name] = struct{}{}
		}
	}

	for _, f := range p.fields {
		if _, ok := inherited[f.field.Name]; ok {
			continue
		}
		if !s.selectsField(f) {
			continue
		}
		selection := FieldSelection(f.field.Name, f.arguments...)
		if f.target.Kind.IsComposite() {
			selection.SelectionSet = []Selection{FragmentSpread(s.fragmentNames[f.target.Name])}
		}
		selections = append(selections, selection)
	}
	return selections
}

// spreadInterfaces returns the selectable interfaces of p that are not
// implemented by another selectable interface of p. The fragment of that
// interface already covers them.
func (p *plan) spreadInterfaces(selectable map[string]bool) []resolvedInterface {
	covered := map[string]struct{}{}
	for _, iface := range p.interfaces {
		if !selectable[iface.typ.Name] {
			continue
		}
		for _, name := range iface.implements {
			covered[name] = struct{}{}
		}
	}

	out := make([]resolvedInterface, 0, len(p.interfaces))
	for _, iface := range p.interfaces {
		if !selectable[iface.typ.Name] {
			continue
		}
		if _, ok := covered[iface.typ.Name]; ok {
			continue
		}
		out = append(out, iface)
	}
	return out
}

func (s *synthesis) unionSelectionSet(p *plan) []Selection {
	var selections []Selection
	if s.config.Typename {
		selections = append(selections, FieldSelection(typenameField))
	}
	for _, member := range p.members {
		if !s.selectable[member.Name] {
			continue
		}
		selections = append(selections, InlineFragment(member.Name, FragmentSpread(s.fragmentNames[member.Name])))
	}
	return selections
}

func (s *synthesis) collect() *Result {
	result := &Result{
		Fragments: make([]Fragment, 0, len(s.plans)),
	}
	for _, p := range s.plans {
		if len(p.selections) == 0 {
			s.log.Debug("fraggen: skipping type without selections",
				abstractlogger.String("type", p.typ.Name),
			)
			if !s.config.Quiet {
				result.Report.AddWarning(Warning{
					Kind:     WarningKindEmptySelection,
					TypeName: p.typ.Name,
				})
			}
			continue
		}
		result.Fragments = append(result.Fragments, Fragment{
			Name:         p.name,
			TypeName:     p.typ.Name,
			TypeKind:     p.typ.Kind,
			SelectionSet: p.selections,
		})
		s.log.Debug("fraggen: fragment synthesized",
			abstractlogger.String("fragment", p.name),
			abstractlogger.Int("selections", len(p.selections)),
		)
	}
	return result
}
