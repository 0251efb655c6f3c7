// Package fragmentprinter renders synthesized fragments as GraphQL fragment definitions.
package fragmentprinter

import (
	"bytes"
	"io"

	"github.com/hroi/fraggen/pkg/fraggen"
	"github.com/hroi/fraggen/pkg/lexing/literal"
)

const DefaultIndent = "  "

func Print(fragments []fraggen.Fragment, out io.Writer) error {
	printer := Printer{}
	return printer.Print(fragments, out)
}

func PrintString(fragments []fraggen.Fragment) (string, error) {
	buff := &bytes.Buffer{}
	err := Print(fragments, buff)
	out := buff.String()
	return out, err
}

// PrintFragment renders a single fragment definition without a trailing newline.
func PrintFragment(fragment fraggen.Fragment) (string, error) {
	buff := &bytes.Buffer{}
	printer := Printer{}
	printer.reset(buff)
	printer.printFragment(fragment)
	return buff.String(), printer.err
}

// Printer writes fragments separated by a blank line. The zero value indents
// with DefaultIndent.
type Printer struct {
	Indent string

	out    io.Writer
	indent []byte
	err    error
}

func (p *Printer) Print(fragments []fraggen.Fragment, out io.Writer) error {
	p.reset(out)
	for i := range fragments {
		if i != 0 {
			p.write(literal.LINETERMINATOR)
		}
		p.printFragment(fragments[i])
		p.write(literal.LINETERMINATOR)
	}
	return p.err
}

func (p *Printer) reset(out io.Writer) {
	p.out = out
	p.err = nil
	p.indent = []byte(DefaultIndent)
	if p.Indent != "" {
		p.indent = []byte(p.Indent)
	}
}

func (p *Printer) write(data []byte) {
	if p.err != nil {
		return
	}
	_, p.err = p.out.Write(data)
}

func (p *Printer) writeString(s string) {
	p.write([]byte(s))
}

func (p *Printer) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		p.write(p.indent)
	}
}

func (p *Printer) printFragment(fragment fraggen.Fragment) {
	p.write(literal.FRAGMENT)
	p.write(literal.SPACE)
	p.writeString(fragment.Name)
	p.write(literal.SPACE)
	p.write(literal.ON)
	p.write(literal.SPACE)
	p.writeString(fragment.TypeName)
	p.write(literal.SPACE)
	p.printSelectionSet(fragment.SelectionSet, 0)
}

func (p *Printer) printSelectionSet(selections []fraggen.Selection, depth int) {
	p.write(literal.LBRACE)
	p.write(literal.LINETERMINATOR)
	for i := range selections {
		p.writeIndent(depth + 1)
		p.printSelection(selections[i], depth+1)
		p.write(literal.LINETERMINATOR)
	}
	p.writeIndent(depth)
	p.write(literal.RBRACE)
}

func (p *Printer) printSelection(selection fraggen.Selection, depth int) {
	switch selection.Kind {
	case fraggen.SelectionKindField:
		p.writeString(selection.Name)
		p.printArguments(selection.Arguments)
		if len(selection.SelectionSet) != 0 {
			p.write(literal.SPACE)
			p.printSelectionSet(selection.SelectionSet, depth)
		}
	case fraggen.SelectionKindFragmentSpread:
		p.write(literal.SPREAD)
		p.writeString(selection.Name)
	case fraggen.SelectionKindInlineFragment:
		p.write(literal.SPREAD)
		p.write(literal.SPACE)
		p.write(literal.ON)
		p.write(literal.SPACE)
		p.writeString(selection.TypeCondition)
		p.write(literal.SPACE)
		p.printSelectionSet(selection.SelectionSet, depth)
	}
}

func (p *Printer) printArguments(arguments []fraggen.Argument) {
	if len(arguments) == 0 {
		return
	}
	p.write(literal.LPAREN)
	p.printArgumentList(arguments)
	p.write(literal.RPAREN)
}

func (p *Printer) printArgumentList(arguments []fraggen.Argument) {
	for i := range arguments {
		if i != 0 {
			p.write(literal.COMMA)
			p.write(literal.SPACE)
		}
		p.writeString(arguments[i].Name)
		p.write(literal.COLON)
		p.write(literal.SPACE)
		if arguments[i].IsObject() {
			p.write(literal.LBRACE)
			p.printArgumentList(arguments[i].Object)
			p.write(literal.RBRACE)
			continue
		}
		p.write(literal.DOLLAR)
		p.writeString(arguments[i].Variable)
	}
}
