package parser

import (
	"cyfko/filterql/pkg/fql/ast"
	"cyfko/filterql/pkg/fql/token"

	fqlErrors "cyfko/filterql/pkg/fql/errors"
)

// buildTree folds a postfix token sequence into a single-rooted
// expression tree using an operand stack. Binary operators pop right
// then left, so that "left op right" matches source order. The stack
// checks are defensive: with a validated token sequence they are
// unreachable, but they must be reported rather than assumed away.
func buildTree(postfix []token.Token) (ast.Node, error) {
	var stack []ast.Node

	for _, tok := range postfix {
		switch tok.Kind {
		case token.Identifier:
			stack = append(stack, &ast.Identifier{Name: tok.Text, NamePos: tok.Pos})

		case token.Not:
			if len(stack) == 0 {
				return nil, fqlErrors.Newf(fqlErrors.TypeTree, tok.Pos, "'!' without operand")
			}
			operand := stack[len(stack)-1]
			stack[len(stack)-1] = &ast.Not{OpPos: tok.Pos, Operand: operand}

		case token.And, token.Or:
			if len(stack) < 2 {
				return nil, fqlErrors.Newf(fqlErrors.TypeTree, tok.Pos,
					"operator '%s' requires two operands", tok.Text)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			if tok.Kind == token.And {
				stack = append(stack, &ast.And{OpPos: tok.Pos, Left: left, Right: right})
			} else {
				stack = append(stack, &ast.Or{OpPos: tok.Pos, Left: left, Right: right})
			}
		}
	}

	if len(stack) != 1 {
		return nil, fqlErrors.Newf(fqlErrors.TypeTree, -1,
			"malformed expression: expected a single root but got %d", len(stack))
	}

	return stack[0], nil
}
