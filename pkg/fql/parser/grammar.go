package parser

import (
	"cyfko/filterql/pkg/fql/token"

	fqlErrors "cyfko/filterql/pkg/fql/errors"
)

// validateGrammar checks every adjacent token pair and the sequence
// boundaries against the expression grammar before any tree is built, so
// that malformed input is reported with the offending token and offset
// instead of surfacing later as a stack underflow.
//
// Parenthesis balance is deliberately not checked here; the
// infix-to-postfix conversion has the information needed to report the
// exact unmatched bracket.
func validateGrammar(tokens []token.Token) error {
	if len(tokens) == 0 {
		return fqlErrors.New(fqlErrors.TypeBlank, "filter expression contains no tokens")
	}

	for i := range tokens {
		var prev, next *token.Token
		if i > 0 {
			prev = &tokens[i-1]
		}
		if i < len(tokens)-1 {
			next = &tokens[i+1]
		}
		if err := checkTransition(prev, &tokens[i], next); err != nil {
			return err
		}
	}

	first := tokens[0]
	if first.Kind.IsBinary() {
		return fqlErrors.Newf(fqlErrors.TypeSyntax, first.Pos,
			"expression cannot start with binary operator '%s'", first.Text)
	}

	last := tokens[len(tokens)-1]
	if last.Kind.IsOperator() {
		return fqlErrors.Newf(fqlErrors.TypeSyntax, last.Pos,
			"expression cannot end with operator '%s'", last.Text)
	}

	return nil
}

// checkTransition enforces the adjacency rules for one token given its
// neighbors. prev and next are nil at the sequence boundaries.
func checkTransition(prev, cur, next *token.Token) error {
	switch cur.Kind {
	case token.Identifier:
		if next != nil && (next.Kind == token.Identifier || next.Kind == token.Not) {
			return fqlErrors.Newf(fqlErrors.TypeSyntax, next.Pos,
				"identifier '%s' cannot be followed by %s", cur.Text, next.Kind)
		}
		if prev != nil && prev.Kind == token.RParen {
			return fqlErrors.Newf(fqlErrors.TypeSyntax, cur.Pos,
				"identifier '%s' cannot follow ')'", cur.Text)
		}

	case token.And, token.Or:
		if prev == nil || (prev.Kind != token.Identifier && prev.Kind != token.RParen) {
			return fqlErrors.Newf(fqlErrors.TypeSyntax, cur.Pos,
				"binary operator '%s' requires a left operand", cur.Text)
		}
		if next != nil && next.Kind.IsBinary() {
			return fqlErrors.Newf(fqlErrors.TypeSyntax, next.Pos,
				"binary operator '%s' cannot be followed by '%s'", cur.Text, next.Text)
		}

	case token.Not:
		if next != nil && next.Kind.IsBinary() {
			return fqlErrors.Newf(fqlErrors.TypeSyntax, next.Pos,
				"'!' cannot be followed by binary operator '%s'", next.Text)
		}
		if prev != nil && (prev.Kind == token.Identifier || prev.Kind == token.RParen) {
			return fqlErrors.Newf(fqlErrors.TypeSyntax, cur.Pos,
				"'!' cannot follow '%s'", prev.Text)
		}

	case token.LParen:
		if prev != nil && (prev.Kind == token.Identifier || prev.Kind == token.RParen) {
			return fqlErrors.Newf(fqlErrors.TypeSyntax, cur.Pos,
				"'(' cannot follow '%s'", prev.Text)
		}

	case token.RParen:
		if prev != nil && (prev.Kind.IsOperator() || prev.Kind == token.LParen) {
			return fqlErrors.Newf(fqlErrors.TypeSyntax, cur.Pos,
				"')' cannot follow '%s'", prev.Text)
		}
	}

	return nil
}
