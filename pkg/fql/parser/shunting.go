package parser

import (
	"cyfko/filterql/pkg/fql/token"

	fqlErrors "cyfko/filterql/pkg/fql/errors"
)

// infixToPostfix converts a validated infix token sequence into postfix
// order using the shunting-yard algorithm. Operator precedence and
// associativity come from the token package: NOT binds tightest and is
// right-associative, so it is never popped by the equal-precedence rule;
// AND and OR are left-associative. Unmatched parentheses are reported
// here, with the offset of the specific bracket.
func infixToPostfix(tokens []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(tokens))
	var operators []token.Token

	for _, tok := range tokens {
		switch tok.Kind {
		case token.Identifier:
			output = append(output, tok)

		case token.Not:
			operators = append(operators, tok)

		case token.And, token.Or:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.Kind == token.LParen {
					break
				}
				if top.Kind.Precedence() > tok.Kind.Precedence() ||
					(top.Kind.Precedence() == tok.Kind.Precedence() && tok.Kind.LeftAssociative()) {
					output = append(output, top)
					operators = operators[:len(operators)-1]
					continue
				}
				break
			}
			operators = append(operators, tok)

		case token.LParen:
			operators = append(operators, tok)

		case token.RParen:
			matched := false
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top.Kind == token.LParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, fqlErrors.Newf(fqlErrors.TypeBracket, tok.Pos, "unmatched ')'")
			}
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.Kind == token.LParen {
			return nil, fqlErrors.Newf(fqlErrors.TypeBracket, top.Pos, "unmatched '('")
		}
		output = append(output, top)
	}

	return output, nil
}
