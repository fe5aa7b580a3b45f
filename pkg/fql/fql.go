package fql

import (
	"strings"

	"cyfko/filterql/pkg/fql/ast"
	"cyfko/filterql/pkg/fql/parser"
)

// Tree is a parsed filter expression. A Tree is immutable and safe for
// concurrent use; Generate may be called any number of times, against
// different Contexts.
type Tree struct {
	root ast.Node
	expr string // trimmed source, matching the offsets carried by errors
}

// Parse parses a filter expression into a Tree. Leading and trailing
// whitespace is ignored. It returns a *errors.Error describing the first
// problem found: blank input, a lexical error, a grammar violation, or
// an unmatched bracket, each with the offending text and offset.
func Parse(expression string) (*Tree, error) {
	p := parser.NewParser()
	root, err := p.Parse(expression)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root, expr: strings.TrimSpace(expression)}, nil
}

// Evaluate parses the expression and immediately generates the composite
// Condition against ctx. Use Parse and Tree.Generate separately to reuse
// a parsed expression across contexts.
func Evaluate(expression string, ctx Context) (Condition, error) {
	tree, err := Parse(expression)
	if err != nil {
		return nil, err
	}
	return tree.Generate(ctx)
}

// Root returns the root node of the expression tree.
func (t *Tree) Root() ast.Node {
	return t.root
}

// Identifiers returns the distinct filter names referenced by the
// expression, in source order.
func (t *Tree) Identifiers() []string {
	return ast.Identifiers(t.root)
}

// String returns the canonical textual form of the expression.
// Re-parsing the canonical form yields a structurally identical tree.
func (t *Tree) String() string {
	return t.root.String()
}
