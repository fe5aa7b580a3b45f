// Package token defines the lexical tokens of the filter expression
// language and the constant operator metadata (precedence and
// associativity) shared by the parser stages.
package token

import "fmt"

// Kind classifies a lexical token of the filter expression language.
type Kind int

const (
	Identifier Kind = iota // named filter reference
	And                    // &
	Or                     // |
	Not                    // !
	LParen                 // (
	RParen                 // )
)

// String returns a human-readable name for the token kind.
func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case And:
		return "'&'"
	case Or:
		return "'|'"
	case Not:
		return "'!'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Precedence returns the binding strength of an operator kind.
// NOT binds tighter than AND, which binds tighter than OR.
// Non-operator kinds have precedence 0.
func (k Kind) Precedence() int {
	switch k {
	case Not:
		return 3
	case And:
		return 2
	case Or:
		return 1
	default:
		return 0
	}
}

// LeftAssociative reports whether an operator kind associates to the left.
// AND and OR are left-associative; NOT is right-associative.
func (k Kind) LeftAssociative() bool {
	return k == And || k == Or
}

// IsBinary reports whether the kind is a binary operator.
func (k Kind) IsBinary() bool {
	return k == And || k == Or
}

// IsOperator reports whether the kind is any of the three logical operators.
func (k Kind) IsOperator() bool {
	return k == And || k == Or || k == Not
}

// Token is a classified lexical unit with its byte offset in the source
// expression. Pos is 0-based and used exclusively for diagnostics.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

// String returns a debug representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q at %d", t.Kind, t.Text, t.Pos)
}
