package parser

import (
	"strings"

	"cyfko/filterql/pkg/fql/ast"
	"cyfko/filterql/pkg/fql/lexer"

	fqlErrors "cyfko/filterql/pkg/fql/errors"
)

// Parser parses filter expressions into expression trees. It holds no
// state across calls: a single instance may be shared by any number of
// goroutines.
type Parser struct{}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse turns a filter expression into its expression tree. The input is
// trimmed of leading and trailing whitespace first; an empty or blank
// expression is rejected. Every stage of the pipeline (lexing, grammar
// validation, infix-to-postfix conversion, tree construction) reports its
// own error class, each carrying the offending text and 0-based offset
// into the trimmed expression.
func (p *Parser) Parse(expression string) (ast.Node, error) {
	trimmed := strings.TrimSpace(expression)
	if trimmed == "" {
		return nil, fqlErrors.New(fqlErrors.TypeBlank, "filter expression cannot be empty or blank")
	}

	tokens, err := lexer.Scan(trimmed)
	if err != nil {
		return nil, attach(err, trimmed)
	}

	if err := validateGrammar(tokens); err != nil {
		return nil, attach(err, trimmed)
	}

	postfix, err := infixToPostfix(tokens)
	if err != nil {
		return nil, attach(err, trimmed)
	}

	root, err := buildTree(postfix)
	if err != nil {
		return nil, attach(err, trimmed)
	}

	return root, nil
}

// attach enriches a pipeline error with the source expression so it can
// render caret context.
func attach(err error, expr string) error {
	if fe, ok := err.(*fqlErrors.Error); ok {
		return fe.WithExpression(expr)
	}
	return err
}
