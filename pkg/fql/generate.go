package fql

import (
	"fmt"

	"cyfko/filterql/pkg/fql/ast"

	fqlErrors "cyfko/filterql/pkg/fql/errors"
)

// Generate walks the expression tree and produces one composite
// Condition. Each identifier leaf resolves through ctx; an unknown name
// fails with an unresolved-reference error naming the identifier. This
// is a semantic error distinct from the parse-time classes: identifier
// existence is only knowable at evaluation time.
//
// Both sides of a binary node are always evaluated, left first, purely
// for determinism. Conditions are inert algebraic values, so there are
// no short-circuit semantics to preserve.
func (t *Tree) Generate(ctx Context) (Condition, error) {
	return t.generate(t.root, ctx)
}

func (t *Tree) generate(n ast.Node, ctx Context) (Condition, error) {
	switch n := n.(type) {
	case *ast.Identifier:
		cond, err := ctx.Lookup(n.Name)
		if err != nil || cond == nil {
			return nil, t.unresolved(n, ctx)
		}
		return cond, nil

	case *ast.Not:
		operand, err := t.generate(n.Operand, ctx)
		if err != nil {
			return nil, err
		}
		return operand.Not(), nil

	case *ast.And:
		left, right, err := t.generatePair(n.Left, n.Right, ctx)
		if err != nil {
			return nil, err
		}
		return left.And(right), nil

	case *ast.Or:
		left, right, err := t.generatePair(n.Left, n.Right, ctx)
		if err != nil {
			return nil, err
		}
		return left.Or(right), nil

	default:
		// The node sum is closed; reaching this is a builder defect.
		return nil, fqlErrors.New(fqlErrors.TypeTree, fmt.Sprintf("unknown node type %T", n))
	}
}

func (t *Tree) generatePair(left, right ast.Node, ctx Context) (Condition, Condition, error) {
	l, err := t.generate(left, ctx)
	if err != nil {
		return nil, nil, err
	}
	r, err := t.generate(right, ctx)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// unresolved builds the referenced-filter-not-found error, with a
// closest-name suggestion when the Context can enumerate its names.
func (t *Tree) unresolved(n *ast.Identifier, ctx Context) error {
	err := fqlErrors.Newf(fqlErrors.TypeUnresolved, n.NamePos,
		"no condition found for filter reference '%s'", n.Name)
	if lister, ok := ctx.(NameLister); ok {
		err.Suggestion = fqlErrors.SuggestName(n.Name, lister.Names())
	}
	return err.WithExpression(t.expr)
}
