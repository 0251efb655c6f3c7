// Package literal holds the GraphQL punctuators and keywords written by the printers.
package literal

var (
	COLON          = []byte(":")
	LINETERMINATOR = []byte("\n")
	SPACE          = []byte(" ")
	COMMA          = []byte(",")
	DOLLAR         = []byte("$")
	SPREAD         = []byte("...")
	LPAREN         = []byte("(")
	RPAREN         = []byte(")")
	LBRACE         = []byte("{")
	RBRACE         = []byte("}")

	FRAGMENT = []byte("fragment")
	ON       = []byte("on")
)

