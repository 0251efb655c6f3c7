// Command fraggen generates fragments for every type in your GraphQL schema.
//
// About fragments
//
// A fragment is a reusable, named selection set bound to a type. Client code that spreads a fragment
// instead of listing fields by hand keeps working when the type gains fields: regenerate the fragments
// and every query picks them up.
//
// About this tool
//
// fraggen reads a schema and writes one fragment per object, interface and union type.
// Leaf fields (scalars and enums) are selected directly. Composite fields select the fragment of their
// own type through a spread instead of being expanded inline, so recursive schemas like
//
//	type Comment { body: String replies: [Comment] }
//
// produce a finite fragment that spreads itself. Union fragments select every member through an inline
// fragment with a spread of the member's fragment.
//
// Besides GraphQL fragment definitions fraggen can write a go file with every fragment as a string constant
// (gen goConstants) and a manifest of the generated fragments that can be checked against the schema (verify).
package main
